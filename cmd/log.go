package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/PolarWolf314/passmap/internal/audit"
	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/PolarWolf314/passmap/internal/ui"
	"github.com/PolarWolf314/passmap/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logName      string
	logJSON      bool
	logOneline   bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation (comma-separated)")
	logCmd.Flags().StringVar(&logName, "name", "", "filter by credential name")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "compact one-line-per-entry format")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logOperation = ""
	logName = ""
	logJSON = false
	logOneline = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit log of passmap operations. Passwords are never logged.

Examples:
  passmap log                           # View full log
  passmap log -n 10                     # Last 10 entries
  passmap log --reverse                 # Most recent first
  passmap log --operation generate,add  # Filter by operation
  passmap log --name gatech             # History of one name
  passmap log --json                    # JSON output
  passmap log --oneline                 # Compact format`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	spinner, cleanup := startSpinner("Loading audit log...", verbose)
	defer cleanup()

	result, err := workflows.Log(context.Background(), workflows.LogOptions{
		Limit:      logLimit,
		Reverse:    logReverse,
		Operations: logOperation,
		Name:       logName,
	})
	if err != nil {
		if errors.Is(err, kerrors.ErrNoAuditLog) {
			spinner.FinalMSG = ui.Info.Sprint("ℹ") + " No audit log found. Operations will be logged after running any command."
			return nil
		}
		return err
	}

	Logger.Debugf("Parsed %d entries from %s", result.TotalEntriesBeforeFilter, result.LogPath)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	spinner.Stop()
	spinner.FinalMSG = ""

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Println("No audit log entries found.")
		} else {
			fmt.Println("No audit log entries found matching the filters.")
		}
		return nil
	}

	if logJSON {
		return outputLogJSON(result.Entries)
	}

	if logOneline {
		outputLogOneline(result.Entries)
		return nil
	}

	outputLogDefault(result.Entries, time.Now())
	return nil
}

func outputLogJSON(entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func outputLogOneline(entries []audit.Entry) {
	for _, e := range entries {
		fmt.Printf("%s %s %s %s\n", workflows.FormatDate(e.Timestamp), e.User, e.Operation, workflows.FormatDetails(e))
	}
}

func outputLogDefault(entries []audit.Entry, now time.Time) {
	for _, e := range entries {
		datetime := workflows.FormatDateTime(e.Timestamp)
		ago := workflows.FormatRelativeTime(e.Timestamp, now)
		fmt.Printf("%-19s  %-16s  %-12s  %-8s  %s\n", datetime, ui.Muted.Sprint(ago), e.User, e.Operation, workflows.FormatDetails(e))
	}
}
