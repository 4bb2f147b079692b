// Package pipeline provides the high-level orchestration for the three
// publishing pipelines. Each Run function is a stateless one-shot transform
// from source files to output files.
package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/halewongai/site-sync/internal/config"
	"github.com/halewongai/site-sync/internal/health"
	"github.com/halewongai/site-sync/internal/logsync"
	"github.com/halewongai/site-sync/internal/publish"
	"github.com/halewongai/site-sync/internal/quota"
	"github.com/halewongai/site-sync/internal/rendering"
	"github.com/halewongai/site-sync/internal/schemas"
	"github.com/halewongai/site-sync/internal/tasks"
)

// Options holds configuration for running a pipeline.
type Options struct {
	Config *config.Config
	Logger *zap.Logger
	Now    func() time.Time // injectable clock; nil uses time.Now
}

func (o *Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o *Options) logger(pipeline string) *zap.Logger {
	l := o.Logger
	if l == nil {
		l = zap.NewNop()
	}
	return l.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("pipeline", pipeline),
	)
}

// RunHealth publishes the status page: load the snapshot, enrich it with
// quota usage, render both languages, and write the JSON copy.
func RunHealth(ctx context.Context, opts Options) error {
	cfg := opts.Config
	logger := opts.logger("health")
	src := cfg.HealthSource()

	snap, raw, err := health.Load(src, opts.now())
	if err != nil {
		return err
	}
	if raw == nil {
		logger.Info("health snapshot missing, publishing placeholder", zap.String("source", src))
	} else if verr := schemas.ValidateHealth(raw); verr != nil {
		logger.Warn("health snapshot failed schema validation", zap.Error(verr))
	}

	report := quota.Fetch(ctx, quota.Options{
		Command: cfg.QuotaCommand,
		Home:    cfg.QuotaHome,
		Timeout: cfg.QuotaTimeout(),
	})
	if !report.OK {
		logger.Warn("quota enrichment degraded", zap.String("detail", report.Detail))
	}
	snap.LLMQuota = report

	zhHTML, err := rendering.RenderHealth(rendering.LangZH, snap)
	if err != nil {
		return err
	}
	enHTML, err := rendering.RenderHealth(rendering.LangEN, snap)
	if err != nil {
		return err
	}

	if err := publish.WriteJSON(filepath.Join(cfg.SiteDir, "status", "health.json"), snap); err != nil {
		return err
	}
	if err := publish.WriteHTML(filepath.Join(cfg.SiteDir, "zh", "status", "index.html"), zhHTML); err != nil {
		return err
	}
	if err := publish.WriteHTML(filepath.Join(cfg.SiteDir, "en", "status", "index.html"), enHTML); err != nil {
		return err
	}

	logger.Info("status page published",
		zap.String("source", src),
		zap.String("severity", snap.Severity),
		zap.Bool("quota_ok", report.OK))
	return nil
}

// RunTasks publishes the task page: load the list, render a
// created-descending view in both languages, and write the JSON copy in
// source order.
func RunTasks(_ context.Context, opts Options) error {
	cfg := opts.Config
	logger := opts.logger("tasks")
	src := cfg.TasksSource()

	list, raw, err := tasks.Load(src)
	if err != nil {
		return err
	}
	if raw == nil {
		logger.Info("task list missing, publishing empty page", zap.String("source", src))
	} else if verr := schemas.ValidateTasks(raw); verr != nil {
		logger.Warn("task list failed schema validation", zap.Error(verr))
	}

	sorted := list.SortedByCreated()
	updated := opts.now().UTC().Format(time.RFC3339)

	zhHTML, err := rendering.RenderTasks(rendering.LangZH, sorted, updated)
	if err != nil {
		return err
	}
	enHTML, err := rendering.RenderTasks(rendering.LangEN, sorted, updated)
	if err != nil {
		return err
	}

	if err := publish.WriteJSON(filepath.Join(cfg.SiteDir, "tasks", "tasks.json"), list); err != nil {
		return err
	}
	if err := publish.WriteHTML(filepath.Join(cfg.SiteDir, "zh", "tasks", "index.html"), zhHTML); err != nil {
		return err
	}
	if err := publish.WriteHTML(filepath.Join(cfg.SiteDir, "en", "tasks", "index.html"), enHTML); err != nil {
		return err
	}

	logger.Info("task page published",
		zap.String("source", src),
		zap.Int("tasks", len(sorted)))
	return nil
}

// RunLogs publishes the log archive: copy it through the redaction filter
// and rebuild the HTML directory page from the index links.
func RunLogs(_ context.Context, opts Options) error {
	cfg := opts.Config
	logger := opts.logger("logs")
	dst := filepath.Join(cfg.SiteDir, "logs")

	result, err := logsync.Sync(cfg.LogDir, dst)
	if err != nil {
		return err
	}

	if result.HasIndex {
		html, err := rendering.RenderLogIndex(result.IndexLinks)
		if err != nil {
			return err
		}
		if err := publish.WriteHTML(filepath.Join(dst, "index.html"), html); err != nil {
			return err
		}
	}

	logger.Info("log archive published",
		zap.String("source", cfg.LogDir),
		zap.Int("files_copied", result.FilesCopied),
		zap.Int("redactions", result.Redactions),
		zap.Int("index_links", len(result.IndexLinks)))
	return nil
}

// RunAll runs the three pipelines in sequence, stopping at the first fatal
// error. Execution stays single-threaded; the pipelines share nothing but
// are kept in a stable order for predictable logs.
func RunAll(ctx context.Context, opts Options) error {
	if err := RunHealth(ctx, opts); err != nil {
		return err
	}
	if err := RunTasks(ctx, opts); err != nil {
		return err
	}
	return RunLogs(ctx, opts)
}
