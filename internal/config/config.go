// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	StateDir string `json:"state_dir,omitempty" validate:"required"` // Dir containing health.json and tasks.json
	LogDir   string `json:"log_dir,omitempty" validate:"required"`   // Log archive dir (INDEX.md, daily/*.md)
	SiteDir  string `json:"site_dir,omitempty" validate:"required"`  // Site repository root for all outputs

	// Quota enrichment
	QuotaCommand        string `json:"quota_command,omitempty"`                                    // Usage-reporting command line
	QuotaHome           string `json:"quota_home,omitempty"`                                       // HOME override for the subprocess
	QuotaTimeoutSeconds int    `json:"quota_timeout_seconds,omitempty" validate:"omitempty,min=1"` // Subprocess timeout

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		StateDir:            "state",
		LogDir:              "openclaw_log",
		SiteDir:             ".",
		QuotaCommand:        "openclaw usage --json",
		QuotaTimeoutSeconds: 20,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values after merging.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return fmt.Errorf("config error: field %q failed %q validation", f.Field(), f.Tag())
	}
	return fmt.Errorf("config error: %w", err)
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.StateDir == "" {
		result.StateDir = defaults.StateDir
	}
	if result.LogDir == "" {
		result.LogDir = defaults.LogDir
	}
	if result.SiteDir == "" {
		result.SiteDir = defaults.SiteDir
	}
	if result.QuotaCommand == "" {
		result.QuotaCommand = defaults.QuotaCommand
	}
	if result.QuotaHome == "" {
		result.QuotaHome = defaults.QuotaHome
	}

	// Int fields: use default if zero
	if result.QuotaTimeoutSeconds == 0 {
		result.QuotaTimeoutSeconds = defaults.QuotaTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// HealthSource returns the path of the upstream health snapshot.
func (c *Config) HealthSource() string {
	return filepath.Join(c.StateDir, "health.json")
}

// TasksSource returns the path of the upstream task list.
func (c *Config) TasksSource() string {
	return filepath.Join(c.StateDir, "tasks.json")
}

// QuotaTimeout returns the quota subprocess timeout as a duration.
func (c *Config) QuotaTimeout() time.Duration {
	return time.Duration(c.QuotaTimeoutSeconds) * time.Second
}
