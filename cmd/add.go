package cmd

import (
	"context"
	"fmt"

	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/PolarWolf314/passmap/internal/ui"
	"github.com/PolarWolf314/passmap/internal/utils"
	"github.com/PolarWolf314/passmap/internal/workflows"
	"github.com/spf13/cobra"
)

var addFromStdin bool

func init() {
	addCmd.Flags().BoolVar(&addFromStdin, "stdin", false, "read the password from stdin")
}

// resetAddCommandState resets the add command's global state for testing.
func resetAddCommandState() {
	addFromStdin = false
}

var addCmd = &cobra.Command{
	Use:     "add <name> [password]",
	Aliases: []string{"a"},
	Short:   "Stores a password you choose under a name",
	Long: `Stores [password] under <name>, replacing any password already stored there.

If [password] is omitted it is read from a hidden prompt, or from stdin
with --stdin. Passing it as an argument leaves it in your shell history.

Examples:
  passmap add github
  passmap add github hunter2
  echo hunter2 | passmap add github --stdin`,
	Args: nameArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting add command")
		name := args[0]

		// Read the password before the spinner starts so prompts stay visible.
		password, err := resolveAddPassword(name, args)
		if err != nil {
			return err
		}

		spinner, cleanup := startSpinner("Storing password...", verbose)
		defer cleanup()

		result, err := workflows.Add(context.Background(), workflows.AddOptions{
			Name:     name,
			Password: password,
		})
		if err != nil {
			Logger.Debugf("Add failed: %v", err)
			return err
		}
		Logger.Infof("Stored password for %s in %s", result.Name, result.StorePath)

		verb := "Added"
		if result.Replaced {
			verb = "Updated"
		}
		spinner.FinalMSG = ui.Success.Sprint("✓") + " " + verb + " password for " + ui.Highlight.Sprint(result.Name)
		return nil
	},
}

func resolveAddPassword(name string, args []string) (string, error) {
	if len(args) > 1 {
		Logger.Debugf("Using password from arguments")
		return args[1], nil
	}

	if addFromStdin {
		Logger.Debugf("Reading password from stdin")
		password, err := utils.ReadPasswordStdin()
		if err != nil {
			return "", Logger.ErrorfAndReturn("reading password from stdin: %w", err)
		}
		return password, nil
	}

	if !utils.IsTerminal() {
		return "", kerrors.ErrMissingPassword
	}

	password, err := utils.ReadPassword(fmt.Sprintf("Password for %s: ", name))
	if err != nil {
		return "", Logger.ErrorfAndReturn("reading password: %w", err)
	}
	confirm, err := utils.ReadPassword("Confirm password: ")
	if err != nil {
		return "", Logger.ErrorfAndReturn("reading confirmation: %w", err)
	}
	if password != confirm {
		return "", kerrors.ErrPasswordMismatch
	}
	return password, nil
}
