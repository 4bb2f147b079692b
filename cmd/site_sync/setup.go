package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/halewongai/site-sync/internal/config"
)

var (
	flagConfigPath string
	flagStateDir   string
	flagSiteDir    string
	flagLogDir     string
	flagVerbose    bool
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	pf.StringVar(&flagStateDir, "state", "", "Directory containing health.json and tasks.json")
	pf.StringVar(&flagSiteDir, "site", "", "Site repository root for all outputs")
	pf.StringVar(&flagLogDir, "log-dir", "", "Log archive directory (INDEX.md, daily/*.md)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

// resolveConfig builds the effective configuration: config file values,
// overridden by explicitly set CLI flags, backfilled with defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg config.Config
	if flagConfigPath != "" {
		loaded, err := config.LoadConfig(flagConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("state") {
		cfg.StateDir = flagStateDir
	}
	if cmd.Flags().Changed("site") {
		cfg.SiteDir = flagSiteDir
	}
	if cmd.Flags().Changed("log-dir") {
		cfg.LogDir = flagLogDir
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flagVerbose
	}

	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	// The quota HOME override can come from the environment (or .env)
	if cfg.QuotaHome == "" {
		cfg.QuotaHome = os.Getenv("OPENCLAW_HOME")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// newLogger creates a console zap logger; --verbose enables debug level.
func newLogger(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)
	return zap.New(core)
}
