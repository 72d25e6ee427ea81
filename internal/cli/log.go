package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"jaldh/config"
	"jaldh/internal/adapter/logsink"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage the jaldh log file",
}

var logResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the configured log file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		sink := logsink.New(cfg.Log.File, cfg.Log.FlushThreshold)
		if err := sink.Remove(); err != nil {
			return fmt.Errorf("failed to remove log %s: %w", sink.Path(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", sink.Path())
		return nil
	},
}

func init() {
	logCmd.AddCommand(logResetCmd)
	rootCmd.AddCommand(logCmd)
}
