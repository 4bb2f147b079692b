package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/halewongai/site-sync/internal/pipeline"
)

var allCommand = &cobra.Command{
	Use:   "all",
	Short: "Run the health, tasks and logs pipelines in sequence",
	Long:  "Regenerates every published page in one invocation, stopping at the first fatal error. Intended as the single scheduler entry point.",
	RunE:  runAllCmd,
}

func init() {
	rootCmd.AddCommand(allCommand)
}

func runAllCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Verbose)
	defer logger.Sync() //nolint:errcheck // stderr sync failure is not actionable

	return pipeline.RunAll(context.Background(), pipeline.Options{
		Config: cfg,
		Logger: logger,
	})
}
