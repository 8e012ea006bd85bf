// Package utils provides shared helpers for the passmap application.
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//   - GetHostname: returns the system hostname
//
// # String Utilities
//
//   - ParseLength: parses a password length argument
//   - FormatNames: formats credential names as an indented list
//
// # I/O and Terminal Utilities
//
//   - ReadStdin: reads piped data from standard input
//   - ReadPassword: prompts for a password without echoing input
//   - IsTerminal: checks if stdin is a terminal
package utils
