package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passmap/internal/audit"
	"github.com/PolarWolf314/passmap/internal/configs"
	"github.com/PolarWolf314/passmap/internal/ui"
	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Shows the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		if err := configs.InitSettings(); err != nil {
			return err
		}
		settings := configs.ActiveSettings

		source := ui.Muted.Sprint("not found, using defaults")
		if configs.ActiveConfigFound {
			source = ui.Muted.Sprint("loaded")
		}

		audited := "off"
		if settings.Audit {
			audited = "on  " + ui.Path.Sprint(audit.LogPath())
		}

		fmt.Println("Config file:   " + ui.Path.Sprint(configs.ActiveConfigPath) + " " + source)
		fmt.Println("Store:         " + ui.Path.Sprint(settings.StorePath))
		fmt.Printf("Random length: %d to %d characters\n", settings.MinLength, settings.MaxLength-1)
		fmt.Println("Audit log:     " + audited)
		return nil
	},
}
