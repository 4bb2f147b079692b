package rendering

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/halewongai/site-sync/internal/types"
)

// severityColors drive the status dot. Unrecognized severities fall back to
// the unknown color.
var severityColors = map[string]string{
	types.SeverityOK:      "#2ecc71",
	types.SeverityWarn:    "#f1c40f",
	types.SeverityCrit:    "#e74c3c",
	types.SeverityUnknown: "#95a5a6",
}

func severityColor(sev string) string {
	if c, ok := severityColors[sev]; ok {
		return c
	}
	return severityColors[types.SeverityUnknown]
}

// statusRow is one pre-escaped table row.
type statusRow struct {
	Name   string
	Status string
	Detail string
}

// quotaWindowRow is one pre-escaped quota window row.
type quotaWindowRow struct {
	Label  string
	Used   string
	Remain string
	Reset  string
}

// quotaView is the quota card state.
type quotaView struct {
	OK       bool
	Provider string
	Updated  string
	Detail   string
	Windows  []quotaWindowRow
}

// healthPage is the fully escaped data handed to the health template.
type healthPage struct {
	HTMLLang       string
	Title          string
	Brand          string
	Subtitle       string
	Lang           string
	Home           string
	OtherLang      string
	OtherLangLabel string

	Overall  string
	Severity string
	SevColor string
	Updated  string
	DiskPct  string
	DiskGB   string
	Loadavg  string
	Swap     string

	SystemsTitle string
	ModulesTitle string
	NameHdr      string
	StatusHdr    string
	DetailHdr    string
	SystemRows   []statusRow
	ModuleRows   []statusRow

	QuotaTitle  string
	QuotaWindow string
	QuotaUsed   string
	QuotaRemain string
	QuotaReset  string
	Quota       quotaView

	NotesTitle string
	Notes      []string
}

var healthTmpl = template.Must(template.New("health").Parse(healthTemplate))

// RenderHealth renders the status page for one language.
func RenderHealth(lang Lang, snap *types.HealthSnapshot) (string, error) {
	data := buildHealthPage(lang, snap)

	var result strings.Builder
	if err := healthTmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Message: "failed to execute health template", Cause: err}
	}
	return result.String(), nil
}

// buildHealthPage is the escaping chokepoint for the status page: every
// dynamic string goes through EscapeHTML here.
func buildHealthPage(lang Lang, snap *types.HealthSnapshot) *healthPage {
	page := &healthPage{
		HTMLLang:       lang.htmlLang(),
		Title:          lang.pick("Status · Assistant No.1", "Status · 一号助理"),
		Brand:          lang.pick("Assistant No.1", "一号助理"),
		Subtitle:       lang.pick("Machine + subsystem health (updated hourly)", "机器与子系统健康状态（每小时更新）"),
		Lang:           lang.path(),
		Home:           lang.pick("Home", "首页"),
		OtherLang:      lang.other().path(),
		OtherLangLabel: lang.otherLabel(),

		Overall:  lang.pick("Overall", "总体"),
		Severity: EscapeHTML(orAbsent(snap.Severity)),
		SevColor: severityColor(snap.Severity),
		Updated:  EscapeHTML(snap.UpdatedAt),
		DiskPct:  EscapeHTML(floatOrAbsent(hostField(snap, func(h *types.HostStats) *float64 { return h.DiskFreePct }))),
		DiskGB:   EscapeHTML(floatOrAbsent(hostField(snap, func(h *types.HostStats) *float64 { return h.DiskFreeGB }))),
		Loadavg:  EscapeHTML(loadavgOrAbsent(snap.Host)),
		Swap:     EscapeHTML(floatOrAbsent(hostField(snap, func(h *types.HostStats) *float64 { return h.SwapUsedMB }))),

		SystemsTitle: lang.pick("Systems", "子系统"),
		ModulesTitle: lang.pick("Key components", "重要功能组件"),
		NameHdr:      lang.pick("Name", "名称"),
		StatusHdr:    lang.pick("Status", "状态"),
		DetailHdr:    lang.pick("Detail", "细节"),

		QuotaTitle:  lang.pick("LLM quota", "LLM 配额"),
		QuotaWindow: lang.pick("Window", "窗口"),
		QuotaUsed:   lang.pick("Used", "已用"),
		QuotaRemain: lang.pick("Remaining", "剩余"),
		QuotaReset:  lang.pick("Resets", "重置"),

		NotesTitle: lang.pick("Notes", "备注"),
	}

	// Systems table: fixed row set so the page shape never depends on which
	// keys the monitor happened to emit.
	for _, row := range []struct{ key, en, zh string }{
		{"selfHeal", "Self-heal", "自救系统"},
		{"logging", "Logging", "日志系统"},
		{"monitoring", "Monitoring", "监控系统"},
		{"mail", "Mail", "邮件系统"},
		{"tasks", "Tasks", "任务系统"},
	} {
		c := snap.Systems[row.key]
		page.SystemRows = append(page.SystemRows, statusRow{
			Name:   EscapeHTML(lang.pick(row.en, row.zh)),
			Status: EscapeHTML(yesNo(c.OK)),
			Detail: EscapeHTML(c.Detail),
		})
	}

	// Key components merge the vpnProxy module with the integrations; the
	// integrations are not rendered as their own section.
	vpn := snap.Modules["vpnProxy"]
	page.ModuleRows = append(page.ModuleRows, statusRow{
		Name:   EscapeHTML(lang.pick("VPN/Proxy", "VPN/代理")),
		Status: EscapeHTML(yesNo(vpn.OK)),
		Detail: EscapeHTML(vpn.Detail),
	})
	gateway := snap.Integrations["gateway"]
	page.ModuleRows = append(page.ModuleRows, statusRow{
		Name:   "Gateway",
		Status: EscapeHTML(yesNo(gateway.OK)),
		Detail: EscapeHTML(gateway.URL),
	})
	gmail := snap.Integrations["gmailPush"]
	page.ModuleRows = append(page.ModuleRows, statusRow{
		Name:   "Gmail Push",
		Status: EscapeHTML(orAbsent(gmail.TrafficState)),
		Detail: "Pub/Sub",
	})

	page.Quota = buildQuotaView(snap.LLMQuota)

	for _, n := range snap.Notes {
		page.Notes = append(page.Notes, EscapeHTML(n))
	}
	if len(page.Notes) == 0 {
		page.Notes = []string{lang.pick("none", "无")}
	}

	return page
}

func buildQuotaView(q *types.QuotaReport) quotaView {
	if q == nil {
		return quotaView{Detail: absent}
	}
	if !q.OK {
		return quotaView{Detail: EscapeHTML(orAbsent(q.Detail))}
	}

	name := q.DisplayName
	if name == "" {
		name = q.Provider
	}
	provider := name
	if q.Plan != "" {
		provider += " (" + q.Plan + ")"
	}

	view := quotaView{
		OK:       true,
		Provider: EscapeHTML(provider),
		Updated:  EscapeHTML(q.UpdatedAt),
	}
	for _, w := range q.Windows {
		view.Windows = append(view.Windows, quotaWindowRow{
			Label:  EscapeHTML(w.Label),
			Used:   formatPercent(w.UsedPercent),
			Remain: formatPercent(w.RemainPercent),
			Reset:  EscapeHTML(orAbsent(w.ResetAt)),
		})
	}
	return view
}

func yesNo(v *bool) string {
	if v == nil {
		return absent
	}
	if *v {
		return "OK"
	}
	return "BAD"
}

func orAbsent(s string) string {
	if s == "" {
		return absent
	}
	return s
}

func floatOrAbsent(v *float64) string {
	if v == nil {
		return absent
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func hostField(snap *types.HealthSnapshot, get func(*types.HostStats) *float64) *float64 {
	if snap.Host == nil {
		return nil
	}
	return get(snap.Host)
}

func loadavgOrAbsent(h *types.HostStats) string {
	return orAbsent(h.LoadavgDisplay())
}

const healthTemplate = `<!doctype html>
<html lang='{{.HTMLLang}}'>
<head>
  <meta charset='utf-8' />
  <meta name='viewport' content='width=device-width, initial-scale=1' />
  <title>{{.Title}}</title>
  <link rel='stylesheet' href='/assets/style.css' />
  <style>
    .sev-dot { display:inline-block; width:10px; height:10px; border-radius:50%; background:{{.SevColor}}; margin-right:8px; }
    .kv { display:grid; grid-template-columns:160px 1fr; gap:8px 12px; }
    .tbl { width:100%; border-collapse:collapse; }
    .tbl td, .tbl th { border-bottom:1px solid rgba(255,255,255,0.08); padding:10px 8px; text-align:left; }
    .mono { font-family: Menlo, Consolas, monospace; font-size: 12px; }
  </style>
</head>
<body>
  <div class='wrap'>
    <div class='header'>
      <div class='brand'>
        <div class='logo' aria-hidden='true'></div>
        <div>
          <div class='h1'>{{.Brand}} <span class='muted'>/ Status</span></div>
          <div class='sub'>{{.Subtitle}}</div>
        </div>
      </div>
      <div class='nav'>
        <a href='/{{.Lang}}/'>{{.Home}}</a>
        <a href='/logs/'>Logs</a>
        <a href='/{{.Lang}}/tasks/'>Tasks</a>
        <a href='/{{.Lang}}/status/'>Status</a>
        <a href='/{{.OtherLang}}/status/'>{{.OtherLangLabel}}</a>
      </div>
    </div>

    <div class='grid'>
      <section class='card' style='grid-column:1/-1'>
        <h2 style='margin-top:0'><span class='sev-dot'></span>{{.Overall}}: {{.Severity}}</h2>
        <div class='body'>
          <div class='kv'>
            <div class='k'>updatedAt</div><div class='mono'>{{.Updated}}</div>
            <div class='k'>disk free</div><div class='mono'>{{.DiskPct}}% ({{.DiskGB}} GB)</div>
            <div class='k'>loadavg</div><div class='mono'>{{.Loadavg}}</div>
            <div class='k'>swap used</div><div class='mono'>{{.Swap}} MB</div>
          </div>
        </div>
      </section>

      <section class='card'>
        <h2>{{.SystemsTitle}}</h2>
        <div class='body'>
          <table class='tbl'>
            <thead><tr><th>{{.NameHdr}}</th><th>{{.StatusHdr}}</th><th>{{.DetailHdr}}</th></tr></thead>
            <tbody>
{{range .SystemRows}}              <tr><td>{{.Name}}</td><td class='mono'>{{.Status}}</td><td class='mono'>{{.Detail}}</td></tr>
{{end}}            </tbody>
          </table>
        </div>
      </section>

      <section class='card'>
        <h2>{{.ModulesTitle}}</h2>
        <div class='body'>
          <table class='tbl'>
            <thead><tr><th>{{.NameHdr}}</th><th>{{.StatusHdr}}</th><th>{{.DetailHdr}}</th></tr></thead>
            <tbody>
{{range .ModuleRows}}              <tr><td>{{.Name}}</td><td class='mono'>{{.Status}}</td><td class='mono'>{{.Detail}}</td></tr>
{{end}}            </tbody>
          </table>
        </div>
      </section>

      <section class='card' style='grid-column:1/-1'>
        <h2>{{.QuotaTitle}}</h2>
        <div class='body'>
{{if .Quota.OK}}          <div class='kv'>
            <div class='k'>provider</div><div class='mono'>{{.Quota.Provider}}</div>
            <div class='k'>updatedAt</div><div class='mono'>{{.Quota.Updated}}</div>
          </div>
          <table class='tbl'>
            <thead><tr><th>{{.QuotaWindow}}</th><th>{{.QuotaUsed}}</th><th>{{.QuotaRemain}}</th><th>{{.QuotaReset}}</th></tr></thead>
            <tbody>
{{range .Quota.Windows}}              <tr><td>{{.Label}}</td><td class='mono'>{{.Used}}</td><td class='mono'>{{.Remain}}</td><td class='mono'>{{.Reset}}</td></tr>
{{end}}            </tbody>
          </table>
{{else}}          <div class='mono'>{{.Quota.Detail}}</div>
{{end}}        </div>
      </section>

      <section class='card' style='grid-column:1/-1'>
        <h2>{{.NotesTitle}}</h2>
        <div class='body'><ul>{{range .Notes}}<li>{{.}}</li>{{end}}</ul></div>
      </section>

      <section class='card' style='grid-column:1/-1'>
        <h2>Raw</h2>
        <div class='body mono'><a href='/status/health.json'>/status/health.json</a></div>
      </section>
    </div>

    <div class='footer'>© <span id='y'></span> {{.Brand}} · Status</div>
  </div>
  <script src='/assets/site.js'></script>
</body>
</html>
`
