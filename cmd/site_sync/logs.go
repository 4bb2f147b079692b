package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/halewongai/site-sync/internal/pipeline"
)

var logsCommand = &cobra.Command{
	Use:   "logs",
	Short: "Publish the Markdown log archive with secrets redacted",
	Long:  "Copies INDEX.md and daily/*.md from the log archive into /logs/ through the redaction filter, then rebuilds the /logs/index.html directory page.",
	RunE:  runLogsCmd,
}

func init() {
	rootCmd.AddCommand(logsCommand)
}

func runLogsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Verbose)
	defer logger.Sync() //nolint:errcheck // stderr sync failure is not actionable

	return pipeline.RunLogs(context.Background(), pipeline.Options{
		Config: cfg,
		Logger: logger,
	})
}
