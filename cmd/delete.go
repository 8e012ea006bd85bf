package cmd

import (
	"context"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/PolarWolf314/passmap/internal/ui"
	"github.com/PolarWolf314/passmap/internal/workflows"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"d"},
	Short:   "Deletes the password stored under a name",
	Args:    nameArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting delete command")
		name := args[0]

		spinner, cleanup := startSpinner("Deleting password...", verbose)
		defer cleanup()

		result, err := workflows.Delete(context.Background(), workflows.DeleteOptions{Name: name})
		if err != nil {
			if errors.Is(err, kerrors.ErrCredentialNotFound) {
				spinner.FinalMSG = ui.Error.Sprint("✗") + " No password stored for " + ui.Highlight.Sprint(name) + "\n" +
					ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("passmap list") + " to see stored names"
				return nil
			}
			Logger.Debugf("Delete failed: %v", err)
			return err
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Deleted password for " + ui.Highlight.Sprint(result.Name) + " " +
			ui.Muted.Sprint(fmt.Sprintf("%d remaining", result.Remaining))
		return nil
	},
}
