// Package health loads the health snapshot produced by the local monitor.
package health

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/halewongai/site-sync/internal/types"
)

// Load reads the snapshot at path. A missing file yields the placeholder
// snapshot so the status page still publishes; malformed JSON is fatal and
// returned as a LoadError. The raw bytes are returned for callers that want
// to schema-check the source document (nil when the placeholder was used).
func Load(path string, now time.Time) (*types.HealthSnapshot, []byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSnapshot(now), nil, nil
		}
		return nil, nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var snap types.HealthSnapshot
	if err := json.Unmarshal(content, &snap); err != nil {
		return nil, nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &snap, content, nil
}

// DefaultSnapshot is what gets published when the monitor has not written
// health.json yet.
func DefaultSnapshot(now time.Time) *types.HealthSnapshot {
	return &types.HealthSnapshot{
		UpdatedAt: now.UTC().Format(time.RFC3339),
		Severity:  types.SeverityUnknown,
		Notes:     []string{"health.json missing"},
	}
}
