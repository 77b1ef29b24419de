package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zzaolv/collo/pkg/logging"
	"github.com/zzaolv/collo/pkg/version"
)

// logger is the command-layer logger, injected by Execute and replaced with a
// development logger when --debug is set.
var logger *zap.Logger

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "collo",
	Short: "Collo exports project context into a single text file",
	Long: `Collo walks a configured set of files and directories, concatenates their
contents into one flat artifact with fenced per-file blocks, and writes it to
a single output file suitable for pasting into review or analysis tools.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if debug {
			debugLogger, err := logging.Setup(true, "collo", version.Get().Version)
			if err != nil {
				return fmt.Errorf("failed to initialize debug logger: %w", err)
			}
			logger = debugLogger
		}
		return nil
	},
}

// Execute adds all child commands to the root command and runs it with the
// given logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
