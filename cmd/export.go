package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/passmap/internal/ui"
	"github.com/PolarWolf314/passmap/internal/workflows"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// exportFormatValue validates --format while flags are parsed.
type exportFormatValue struct {
	format workflows.ExportFormat
}

var _ pflag.Value = (*exportFormatValue)(nil)

func (v *exportFormatValue) String() string { return string(v.format) }

func (v *exportFormatValue) Set(s string) error {
	format, err := workflows.ParseExportFormat(s)
	if err != nil {
		return err
	}
	v.format = format
	return nil
}

func (v *exportFormatValue) Type() string { return "format" }

var (
	exportFormat = exportFormatValue{format: workflows.FormatJSON}
	exportOutput string
)

func init() {
	exportCmd.Flags().VarP(&exportFormat, "format", "f", "output format: json, yaml or toml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to a file instead of stdout")
}

// resetExportCommandState resets the export command's global state for testing.
func resetExportCommandState() {
	exportFormat = exportFormatValue{format: workflows.FormatJSON}
	exportOutput = ""
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports every name and password as JSON, YAML or TOML",
	Long: `Exports the whole credential file, passwords included, in plain text.

Examples:
  passmap export
  passmap export --format yaml
  passmap export --format toml --output backup.toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting export command")

		spinner, cleanup := startSpinner("Exporting passwords...", verbose)
		defer cleanup()

		result, err := workflows.Export(context.Background(), workflows.ExportOptions{
			Format:     exportFormat.format,
			OutputPath: exportOutput,
		})
		if err != nil {
			Logger.Debugf("Export failed: %v", err)
			return err
		}

		if result.OutputPath == "" {
			spinner.Stop()
			Logger.WarnfUser("The export contains every password in plain text")
			fmt.Print(string(result.Data))
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Exported %d passwords as %s to ", result.Count, result.Format) +
			ui.Path.Sprint(result.OutputPath) + "\n" +
			ui.Warning.Sprint("⚠") + " The file contains every password in plain text"
		return nil
	},
}
