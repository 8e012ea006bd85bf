package cmd

import (
	"fmt"
	"time"

	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/PolarWolf314/passmap/internal/ui"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. The returned cleanup function must be deferred.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup
// function stops the spinner and prints FinalMSG through ui.EnsureNewline.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Printed to stdout so tests can capture it.
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// nameArgs validates that a credential name is present and that no more
// than maxArgs positional arguments were given.
func nameArgs(maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || args[0] == "" {
			return kerrors.ErrMissingName
		}
		return cobra.MaximumNArgs(maxArgs)(cmd, args)
	}
}

// passwordLine renders "Password for <name>: <password>".
func passwordLine(name, password string) string {
	return "Password for " + name + ": " + ui.Secret.Sprint(password)
}
