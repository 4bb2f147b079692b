package quota

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUsage = `{
  "usage": {
    "providers": [
      {
        "name": "anthropic",
        "displayName": "Claude",
        "plan": "max",
        "updatedAt": "2024-06-01T10:00:00Z",
        "windows": [
          {"label": "5h", "usedPercent": 37.5, "resetAt": "2024-06-01T12:00:00Z"},
          {"label": "week", "usedPercent": 120, "resetAt": "2024-06-03T00:00:00Z"}
        ]
      },
      {"name": "other", "windows": []}
    ]
  }
}`

func TestParse_FirstProviderWins(t *testing.T) {
	report := Parse([]byte(sampleUsage))

	require.True(t, report.OK)
	assert.Equal(t, "anthropic", report.Provider)
	assert.Equal(t, "Claude", report.DisplayName)
	assert.Equal(t, "max", report.Plan)
	require.Len(t, report.Windows, 2)
	assert.Equal(t, "5h", report.Windows[0].Label)
	assert.Equal(t, 37.5, report.Windows[0].UsedPercent)
	assert.Equal(t, 62.5, report.Windows[0].RemainPercent)
}

func TestParse_RemainPercentClampedAtZero(t *testing.T) {
	report := Parse([]byte(sampleUsage))
	require.Len(t, report.Windows, 2)
	assert.Equal(t, float64(0), report.Windows[1].RemainPercent)
}

func TestParse_MalformedJSON(t *testing.T) {
	report := Parse([]byte("not json"))
	assert.False(t, report.OK)
	assert.Contains(t, report.Detail, "malformed usage output")
}

func TestParse_NoProviders(t *testing.T) {
	report := Parse([]byte(`{"usage": {"providers": []}}`))
	assert.False(t, report.OK)
	assert.Contains(t, report.Detail, "no providers")
}

func TestFetch_EmptyCommand(t *testing.T) {
	report := Fetch(context.Background(), Options{})
	assert.False(t, report.OK)
	assert.Contains(t, report.Detail, "not configured")
}

func TestFetch_MissingBinary(t *testing.T) {
	report := Fetch(context.Background(), Options{Command: "definitely-not-a-real-binary-xyz"})
	assert.False(t, report.OK)
	assert.Contains(t, report.Detail, "quota command failed")
}

func TestFetch_NonZeroExit(t *testing.T) {
	report := Fetch(context.Background(), Options{Command: "false"})
	assert.False(t, report.OK)
	assert.Contains(t, report.Detail, "quota command failed")
}

func TestFetch_Timeout(t *testing.T) {
	report := Fetch(context.Background(), Options{
		Command: "sleep 5",
		Timeout: 50 * time.Millisecond,
	})
	assert.False(t, report.OK)
	assert.Contains(t, report.Detail, "timed out")
}

func TestFetch_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleUsage), 0644))

	report := Fetch(context.Background(), Options{Command: "cat " + path})
	require.True(t, report.OK, "detail: %s", report.Detail)
	assert.Equal(t, "anthropic", report.Provider)
}
