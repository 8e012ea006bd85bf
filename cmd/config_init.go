package cmd

import (
	"errors"
	"fmt"

	"github.com/PolarWolf314/passmap/internal/configs"
	kerrors "github.com/PolarWolf314/passmap/internal/errors"
	"github.com/PolarWolf314/passmap/internal/ui"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		path, err := configs.ConfigPath()
		if err != nil {
			return err
		}
		Logger.Debugf("Config path: %s", path)

		if configInitForce {
			Logger.WarnfUser("Using --force will overwrite %s", path)
		}

		if err := configs.WriteDefaultConfig(path, configInitForce); err != nil {
			if errors.Is(err, kerrors.ErrConfigExists) {
				fmt.Println(ui.Error.Sprint("✗") + " " + ui.Path.Sprint(path) + " already exists")
				fmt.Println("Run again with " + ui.Flag.Sprint("--force") + " to overwrite it")
				return nil
			}
			return err
		}

		fmt.Println(ui.Success.Sprint("✓") + " Wrote default settings to " + ui.Path.Sprint(path))
		return nil
	},
}
