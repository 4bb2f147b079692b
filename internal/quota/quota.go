// Package quota shells out to the local usage-reporting CLI and converts
// its output into a QuotaReport for the health page.
package quota

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/halewongai/site-sync/internal/types"
)

// defaultTimeout bounds the subprocess when the config leaves it unset.
const defaultTimeout = 20 * time.Second

// Options configures the enrichment call.
type Options struct {
	Command string        // full command line, whitespace separated
	Home    string        // HOME override for the subprocess; empty keeps the caller's
	Timeout time.Duration // subprocess deadline; <=0 uses defaultTimeout
}

// usagePayload mirrors the JSON the usage command prints on stdout.
type usagePayload struct {
	Usage struct {
		Providers []struct {
			Name        string `json:"name"`
			DisplayName string `json:"displayName"`
			Plan        string `json:"plan"`
			UpdatedAt   string `json:"updatedAt"`
			Windows     []struct {
				Label       string  `json:"label"`
				UsedPercent float64 `json:"usedPercent"`
				ResetAt     string  `json:"resetAt"`
			} `json:"windows"`
		} `json:"providers"`
	} `json:"usage"`
}

// Fetch runs the configured usage command and parses its output. It never
// returns an error: every failure mode collapses into an ok:false report so
// a broken quota feed cannot take down the health page.
func Fetch(ctx context.Context, opts Options) *types.QuotaReport {
	parts := strings.Fields(opts.Command)
	if len(parts) == 0 {
		return degraded("quota command not configured")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	// The invoking user and the agent keep credentials in different home
	// directories; the override points the CLI at the agent's store.
	cmd.Env = os.Environ()
	if opts.Home != "" {
		cmd.Env = append(cmd.Env, "HOME="+opts.Home)
	}

	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return degraded(fmt.Sprintf("quota command timed out after %s", timeout))
		}
		return degraded(fmt.Sprintf("quota command failed: %v", err))
	}

	return Parse(out)
}

// Parse converts raw usage JSON into a report. The first provider wins;
// RemainPercent is derived per window and clamped at zero.
func Parse(raw []byte) *types.QuotaReport {
	var payload usagePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return degraded(fmt.Sprintf("malformed usage output: %v", err))
	}

	providers := payload.Usage.Providers
	if len(providers) == 0 {
		return degraded("no providers in usage output")
	}

	p := providers[0]
	report := &types.QuotaReport{
		OK:          true,
		Provider:    p.Name,
		DisplayName: p.DisplayName,
		Plan:        p.Plan,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, w := range p.Windows {
		remain := 100 - w.UsedPercent
		if remain < 0 {
			remain = 0
		}
		report.Windows = append(report.Windows, types.QuotaWindow{
			Label:         w.Label,
			UsedPercent:   w.UsedPercent,
			RemainPercent: remain,
			ResetAt:       w.ResetAt,
		})
	}
	return report
}

func degraded(detail string) *types.QuotaReport {
	return &types.QuotaReport{OK: false, Detail: detail}
}
