// Package types provides type definitions for the structured payloads
// exchanged between the publishing pipelines.
package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Severity values reported by the upstream health monitor.
const (
	SeverityOK      = "ok"
	SeverityWarn    = "warn"
	SeverityCrit    = "crit"
	SeverityUnknown = "unknown"
)

// ComponentStatus describes a single monitored subsystem or module.
type ComponentStatus struct {
	OK     *bool  `json:"ok,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Integration describes an external service hookup reported by the monitor.
type Integration struct {
	OK             *bool  `json:"ok,omitempty"`
	URL            string `json:"url,omitempty"`
	TrafficState   string `json:"state,omitempty"`
	SubscriptionOK *bool  `json:"subscriptionOk,omitempty"`
}

// HostStats holds machine-level metrics. Every field is optional; absent
// values render as a placeholder.
type HostStats struct {
	DiskFreePct   *float64        `json:"diskFreePct,omitempty"`
	DiskFreeGB    *float64        `json:"diskFreeGB,omitempty"`
	MemUsedGB     *float64        `json:"memUsedGB,omitempty"`
	MemTotalGB    *float64        `json:"memTotalGB,omitempty"`
	MemAvailGB    *float64        `json:"memAvailGB,omitempty"`
	Loadavg       json.RawMessage `json:"loadavg,omitempty"`
	Load5mPerCore *float64        `json:"load5mPerCore,omitempty"`
	SwapUsedMB    *float64        `json:"swapUsedMB,omitempty"`
}

// LoadavgDisplay returns the load average as display text. The monitor has
// emitted both a plain string and a numeric triple over time, so the raw
// JSON is kept and flattened here.
func (h *HostStats) LoadavgDisplay() string {
	if h == nil || len(h.Loadavg) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(h.Loadavg, &s); err == nil {
		return s
	}
	var nums []float64
	if err := json.Unmarshal(h.Loadavg, &nums); err == nil {
		parts := make([]string, len(nums))
		for i, n := range nums {
			parts[i] = strconv.FormatFloat(n, 'f', 2, 64)
		}
		return strings.Join(parts, " ")
	}
	return string(h.Loadavg)
}

// HealthSnapshot is the payload produced by the local health monitor. It is
// read-only to the publishing pipeline except for LLMQuota, which the
// pipeline computes and injects before persisting its own copy.
type HealthSnapshot struct {
	UpdatedAt    string                     `json:"updatedAt,omitempty"`
	Severity     string                     `json:"severity,omitempty"`
	Host         *HostStats                 `json:"host,omitempty"`
	Systems      map[string]ComponentStatus `json:"systems,omitempty"`
	Modules      map[string]ComponentStatus `json:"modules,omitempty"`
	Integrations map[string]Integration     `json:"integrations,omitempty"`
	LLMQuota     *QuotaReport               `json:"llmQuota,omitempty"`
	Notes        []string                   `json:"notes,omitempty"`
}
