// Package ui provides semantic text formatting for CLI output.
//
// Formatters render with colour when the terminal supports it. When
// NO_COLOR is set or the terminal can't show colour, a text decoration
// (backticks, quotes, parentheses) marks the content instead.
//
//	ui.Code.Sprint("passmap generate gatech")  // Commands
//	ui.Path.Sprint(".map.json")                // File paths
//	ui.Success.Sprint("✓")                     // Success indicators
//	ui.Error.Sprint("✗")                       // Error indicators
//	ui.Info.Sprint("→")                        // Hints
//	ui.Highlight.Sprint("gatech")              // Credential names
//	ui.Muted.Sprint("3 entries")               // Secondary text
package ui
