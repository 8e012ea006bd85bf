// Package logger provides leveled console logging for passmap commands.
//
// The logger supports two verbosity levels controlled by command-line
// flags. Output is prefixed and coloured with fatih/color.
//
// # Verbosity Levels
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Warnings and errors are always shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Always shown on stderr
//	Logger.WarnfUser()       // User-facing warning, no [warn] prefix
//	Logger.Errorf()          // Always shown on stderr
//	Logger.ErrorfAndReturn() // Logs with --debug and returns the error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %d credentials", len(creds))
//
// Commands create a logger in the root PersistentPreRun.
package logger
