package cmd

import (
	"fmt"

	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	logger "github.com/PolarWolf314/passmap/internal/logging"
	"github.com/PolarWolf314/passmap/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "passmap",
		Short: "passmap - a local password generator and store",
		Long: `passmap generates, stores, retrieves, updates and deletes passwords kept
in a JSON file (.map.json) in the current directory.

The file is plain JSON: passwords are not encrypted, and concurrent
invocations are not locked against each other.

Examples:
  passmap generate gatech 10     # or: passmap g gatech 10
  passmap obtain gatech          # or: passmap o gatech
  passmap add github hunter2     # or: passmap a github hunter2
  passmap delete github          # or: passmap d github`,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			// Argument errors have already been reported with usage by now;
			// anything failing from here on is not a usage problem.
			cmd.SilenceUsage = true
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			figure.NewFigure("passmap", "", true).Print()
			fmt.Println()
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("passmap --help") + " to see available commands")
			return kerrors.ErrNoCommand
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(obtainCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(ConfigCmd)

	// Keep the original single-letter `h` for help.
	RootCmd.InitDefaultHelpCmd()
	for _, c := range RootCmd.Commands() {
		if c.Name() == "help" {
			c.Aliases = append(c.Aliases, "h")
		}
	}
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetSilenceUsage(RootCmd)
	resetGenerateCommandState()
	resetObtainCommandState()
	resetAddCommandState()
	resetListCommandState()
	resetExportCommandState()
	resetLogCommandState()
	resetConfigInitState()
}

func resetSilenceUsage(c *cobra.Command) {
	c.SilenceUsage = false
	for _, sub := range c.Commands() {
		resetSilenceUsage(sub)
	}
}
