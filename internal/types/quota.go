package types

// QuotaWindow is one usage-accounting period reported by the provider,
// e.g. an hourly or weekly allowance.
type QuotaWindow struct {
	Label         string  `json:"label"`
	UsedPercent   float64 `json:"usedPercent"`
	RemainPercent float64 `json:"remainPercent"`
	ResetAt       string  `json:"resetAt,omitempty"`
}

// QuotaReport is the result of the quota enrichment step. A failed
// enrichment carries OK=false and a human-readable Detail; it never blocks
// publishing the rest of the health page.
type QuotaReport struct {
	OK          bool          `json:"ok"`
	Provider    string        `json:"provider,omitempty"`
	DisplayName string        `json:"displayName,omitempty"`
	Plan        string        `json:"plan,omitempty"`
	UpdatedAt   string        `json:"updatedAt,omitempty"`
	Detail      string        `json:"detail,omitempty"`
	Windows     []QuotaWindow `json:"windows,omitempty"`
}
