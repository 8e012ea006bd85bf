package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/passmap/internal/ui"
	"github.com/PolarWolf314/passmap/internal/utils"
	"github.com/PolarWolf314/passmap/internal/workflows"
	"github.com/spf13/cobra"
)

var listMatch string

func init() {
	listCmd.Flags().StringVarP(&listMatch, "match", "m", "", "only list names matching a glob (supports **)")
}

// resetListCommandState resets the list command's global state for testing.
func resetListCommandState() {
	listMatch = ""
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l", "ls"},
	Short:   "Lists stored names without their passwords",
	Long: `Lists the names stored in the credential file. Passwords are never shown.

Examples:
  passmap list
  passmap list --match 'work/**'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		spinner, cleanup := startSpinner("Reading names...", verbose)
		defer cleanup()

		result, err := workflows.List(context.Background(), workflows.ListOptions{Match: listMatch})
		if err != nil {
			Logger.Debugf("List failed: %v", err)
			return err
		}
		Logger.Debugf("%d of %d names matched", len(result.Names), result.Total)

		switch {
		case result.Total == 0:
			spinner.FinalMSG = ui.Info.Sprint("ℹ") + " No passwords stored yet\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("passmap generate <name>") + " to create one"
		case len(result.Names) == 0:
			spinner.FinalMSG = ui.Info.Sprint("ℹ") + " No names match " + ui.Highlight.Sprint(listMatch)
		default:
			spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" %d of %d stored names:\n", len(result.Names), result.Total) +
				utils.FormatNames(result.Names)
		}
		return nil
	},
}
