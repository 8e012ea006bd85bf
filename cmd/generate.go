package cmd

import (
	"context"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/PolarWolf314/passmap/internal/ui"
	"github.com/PolarWolf314/passmap/internal/workflows"
	"github.com/spf13/cobra"
)

var generateShow bool

func init() {
	generateCmd.Flags().BoolVarP(&generateShow, "show", "s", false, "print the generated password")
	generateCmd.SetFlagErrorFunc(negativeLengthFlagError)
}

// negativeLengthFlagError reports a negative length such as `-5`, which
// pflag reads as an unknown shorthand flag, as an invalid length.
func negativeLengthFlagError(cmd *cobra.Command, err error) error {
	const unknownShorthand = "unknown shorthand flag: '"
	msg := err.Error()
	if strings.HasPrefix(msg, unknownShorthand) && len(msg) > len(unknownShorthand) {
		if c := msg[len(unknownShorthand)]; c >= '0' && c <= '9' {
			return fmt.Errorf("%w: %s", kerrors.ErrInvalidLength, msg[strings.LastIndex(msg, " ")+1:])
		}
	}
	return err
}

// resetGenerateCommandState resets the generate command's global state for testing.
func resetGenerateCommandState() {
	generateShow = false
}

var generateCmd = &cobra.Command{
	Use:     "generate <name> [length]",
	Aliases: []string{"g"},
	Short:   "Generates a random password and stores it under a name",
	Long: `Generates a random password of ASCII letters and stores it under <name>,
replacing any password already stored there.

Without [length], the length is picked at random between 8 and 14
characters (configurable with min_length and max_length).

Examples:
  passmap generate gatech
  passmap generate gatech 10 --show`,
	Args: nameArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting generate command")

		opts := workflows.GenerateOptions{Name: args[0]}
		if len(args) > 1 {
			opts.Length = args[1]
		}

		spinner, cleanup := startSpinner("Generating password...", verbose)
		defer cleanup()

		result, err := workflows.Generate(context.Background(), opts)
		if err != nil {
			Logger.Debugf("Generate failed: %v", err)
			return err
		}
		Logger.Infof("Stored %d-character password for %s in %s", result.Length, result.Name, result.StorePath)

		verb := "Generated"
		if result.Replaced {
			verb = "Regenerated"
		}
		finalMessage := ui.Success.Sprint("✓") + fmt.Sprintf(" %s a %d-character password for ", verb, result.Length) +
			ui.Highlight.Sprint(result.Name)
		if generateShow {
			finalMessage += "\n" + passwordLine(result.Name, result.Password)
		} else {
			finalMessage += "\n" + ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("passmap obtain "+result.Name) + " to view it"
		}

		spinner.FinalMSG = finalMessage
		return nil
	},
}
