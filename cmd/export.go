package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zzaolv/collo/pkg/export"
)

// exportCmd runs the export: it resolves the configured inputs against the
// working directory and writes the combined artifact. Missing or unreadable
// inputs are reported as warnings and never fail the command; only a config
// problem or an unwritable output file does.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the configured project files into one artifact",
	Long: `Export reads the collo configuration, appends every configured specific file
in order, then every regular file under each configured directory in
lexicographic path order, and writes the result to the configured output file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		cfg, err := export.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if output != "" {
			cfg.OutputFilename = output
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		report, err := export.Export(*cfg, logger)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		color.Green("Export complete: %d files written to %s", report.Written, report.Output)
		if skipped := len(report.Skipped) + len(report.Failed); skipped > 0 {
			color.Yellow("Warnings: %d configured paths missing, %d files unreadable", len(report.Skipped), len(report.Failed))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("config", "c", "collo.yaml", "Path to the collo configuration file")
	exportCmd.Flags().StringP("output", "o", "", "Override the configured output filename")

	RootCmd.AddCommand(exportCmd)
}
