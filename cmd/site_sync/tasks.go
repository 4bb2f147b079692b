package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/halewongai/site-sync/internal/pipeline"
)

var tasksCommand = &cobra.Command{
	Use:   "tasks",
	Short: "Publish the captured task list as the bilingual tasks page",
	Long:  "Reads tasks.json from the state directory and writes /tasks/tasks.json plus the zh/en task pages, newest tasks first.",
	RunE:  runTasksCmd,
}

func init() {
	rootCmd.AddCommand(tasksCommand)
}

func runTasksCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Verbose)
	defer logger.Sync() //nolint:errcheck // stderr sync failure is not actionable

	return pipeline.RunTasks(context.Background(), pipeline.Options{
		Config: cfg,
		Logger: logger,
	})
}
