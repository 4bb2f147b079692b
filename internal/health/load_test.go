package health

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halewongai/site-sync/internal/types"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	snap, raw, err := Load(filepath.Join(t.TempDir(), "health.json"), now)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Nil(t, raw)

	assert.Equal(t, types.SeverityUnknown, snap.Severity)
	assert.Equal(t, "2024-06-01T10:00:00Z", snap.UpdatedAt)
	assert.Equal(t, []string{"health.json missing"}, snap.Notes)
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.json")
	content := `{
		"updatedAt": "2024-06-01T09:00:00Z",
		"severity": "ok",
		"host": {"diskFreePct": 61.2, "swapUsedMB": 0},
		"systems": {"mail": {"ok": false, "detail": "smtp down"}}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	snap, raw, err := Load(path, time.Now())
	require.NoError(t, err)
	require.NotNil(t, raw)

	assert.Equal(t, types.SeverityOK, snap.Severity)
	require.NotNil(t, snap.Host)
	require.NotNil(t, snap.Host.DiskFreePct)
	assert.Equal(t, 61.2, *snap.Host.DiskFreePct)
	require.NotNil(t, snap.Systems["mail"].OK)
	assert.False(t, *snap.Systems["mail"].OK)
	assert.Equal(t, "smtp down", snap.Systems["mail"].Detail)
}

func TestLoad_MalformedJSONIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, _, err := Load(path, time.Now())
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok, "error should be LoadError type")
	assert.Contains(t, loadErr.Error(), "failed to unmarshal JSON")
}
