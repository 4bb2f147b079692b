package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/halewongai/site-sync/internal/pipeline"
)

var healthCommand = &cobra.Command{
	Use:   "health",
	Short: "Publish the health snapshot as the bilingual status page",
	Long:  "Reads health.json from the state directory, enriches it with LLM quota usage from the local usage command, and writes /status/health.json plus the zh/en status pages.",
	RunE:  runHealthCmd,
}

func init() {
	rootCmd.AddCommand(healthCommand)
}

func runHealthCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Verbose)
	defer logger.Sync() //nolint:errcheck // stderr sync failure is not actionable

	return pipeline.RunHealth(context.Background(), pipeline.Options{
		Config: cfg,
		Logger: logger,
	})
}
