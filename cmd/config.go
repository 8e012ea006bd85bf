package cmd

import (
	"github.com/spf13/cobra"
)

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage passmap configuration",
	Long: `Provides commands for managing the passmap configuration file.

Settings are read from config.toml in your user config directory and can
be overridden with PASSMAP_* environment variables.

Examples:
  # Write a config file with the default settings
  passmap config init

  # Show the effective settings
  passmap config show`,
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}
