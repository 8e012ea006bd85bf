package cmd

import (
	"context"
	"errors"

	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/PolarWolf314/passmap/internal/workflows"
	"github.com/spf13/cobra"
)

var obtainRaw bool

func init() {
	obtainCmd.Flags().BoolVarP(&obtainRaw, "raw", "r", false, "print only the password, for use in scripts")
}

// resetObtainCommandState resets the obtain command's global state for testing.
func resetObtainCommandState() {
	obtainRaw = false
}

var obtainCmd = &cobra.Command{
	Use:     "obtain <name>",
	Aliases: []string{"o"},
	Short:   "Prints the password stored under a name",
	Long: `Prints the password stored under <name>.

Examples:
  passmap obtain gatech
  passmap obtain gatech --raw | pbcopy`,
	Args: nameArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting obtain command")
		name := args[0]

		spinner, cleanup := startSpinner("Looking up password...", verbose)
		defer cleanup()

		result, err := workflows.Obtain(context.Background(), workflows.ObtainOptions{Name: name})
		if err != nil {
			if errors.Is(err, kerrors.ErrCredentialNotFound) {
				Logger.Infof("No password stored for %s", name)
				if obtainRaw {
					return err
				}
				spinner.FinalMSG = passwordLine(name, "Password not found")
				return nil
			}
			Logger.Debugf("Obtain failed: %v", err)
			return err
		}

		if obtainRaw {
			spinner.FinalMSG = result.Password
			return nil
		}
		spinner.FinalMSG = passwordLine(result.Name, result.Password)
		return nil
	},
}
