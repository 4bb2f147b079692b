package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadavgDisplay_String(t *testing.T) {
	h := &HostStats{Loadavg: json.RawMessage(`"1.20 1.05 0.98"`)}
	assert.Equal(t, "1.20 1.05 0.98", h.LoadavgDisplay())
}

func TestLoadavgDisplay_NumericTriple(t *testing.T) {
	h := &HostStats{Loadavg: json.RawMessage(`[1.2, 1.05, 0.98]`)}
	assert.Equal(t, "1.20 1.05 0.98", h.LoadavgDisplay())
}

func TestLoadavgDisplay_Absent(t *testing.T) {
	assert.Equal(t, "", (&HostStats{}).LoadavgDisplay())
	assert.Equal(t, "", (*HostStats)(nil).LoadavgDisplay())
}

func TestHealthSnapshot_UnmarshalPartialPayload(t *testing.T) {
	payload := `{
		"updatedAt": "2024-06-01T10:00:00Z",
		"severity": "warn",
		"host": {"diskFreePct": 42.5},
		"systems": {"logging": {"ok": true, "detail": "rotating"}},
		"notes": ["disk filling up"]
	}`

	var snap HealthSnapshot
	require.NoError(t, json.Unmarshal([]byte(payload), &snap))

	assert.Equal(t, "warn", snap.Severity)
	require.NotNil(t, snap.Host)
	require.NotNil(t, snap.Host.DiskFreePct)
	assert.Equal(t, 42.5, *snap.Host.DiskFreePct)
	assert.Nil(t, snap.Host.MemUsedGB)
	require.Contains(t, snap.Systems, "logging")
	require.NotNil(t, snap.Systems["logging"].OK)
	assert.True(t, *snap.Systems["logging"].OK)
	assert.Nil(t, snap.LLMQuota)
}
