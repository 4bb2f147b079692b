package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"state_dir": "/var/state",
		"log_dir": "/var/log/archive",
		"site_dir": "/srv/site",
		"quota_timeout_seconds": 5
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/state", cfg.StateDir)
	assert.Equal(t, "/var/log/archive", cfg.LogDir)
	assert.Equal(t, "/srv/site", cfg.SiteDir)
	assert.Equal(t, 5, cfg.QuotaTimeoutSeconds)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{SiteDir: "/srv/site"}
	merged := cfg.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, "/srv/site", merged.SiteDir)
	assert.Equal(t, "state", merged.StateDir)
	assert.Equal(t, "openclaw_log", merged.LogDir)
	assert.Equal(t, "openclaw usage --json", merged.QuotaCommand)
	assert.Equal(t, 20, merged.QuotaTimeoutSeconds)
}

func TestMergeWithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{QuotaCommand: "mytool usage", QuotaTimeoutSeconds: 3}
	merged := cfg.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, "mytool usage", merged.QuotaCommand)
	assert.Equal(t, 3, merged.QuotaTimeoutSeconds)
}

func TestValidate_MergedDefaultsPass(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := Config{StateDir: "state", LogDir: "logs"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SiteDir")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QuotaTimeoutSeconds = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QuotaTimeoutSeconds")
}

func TestSourcePaths(t *testing.T) {
	cfg := Config{StateDir: "/var/state"}
	assert.Equal(t, filepath.Join("/var/state", "health.json"), cfg.HealthSource())
	assert.Equal(t, filepath.Join("/var/state", "tasks.json"), cfg.TasksSource())
}

func TestQuotaTimeout(t *testing.T) {
	cfg := Config{QuotaTimeoutSeconds: 7}
	assert.Equal(t, 7*time.Second, cfg.QuotaTimeout())
}
