package rendering

import (
	"strings"
	"text/template"

	"github.com/halewongai/site-sync/internal/types"
)

// logIndexPage is the data for the log directory page. Dates and hrefs come
// straight from the archive index markdown; they are inserted verbatim.
type logIndexPage struct {
	Items []types.IndexLink
}

var logIndexTmpl = template.Must(template.New("logindex").Parse(logIndexTemplate))

// RenderLogIndex renders the English-only log directory page from the
// extracted index links.
func RenderLogIndex(links []types.IndexLink) (string, error) {
	var result strings.Builder
	if err := logIndexTmpl.Execute(&result, &logIndexPage{Items: links}); err != nil {
		return "", &TemplateError{Message: "failed to execute log index template", Cause: err}
	}
	return result.String(), nil
}

const logIndexTemplate = `<!doctype html>
<html lang="en"><head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>OpenClaw Log</title>
  <link rel="stylesheet" href="/assets/style.css" />
</head><body>
<div class="wrap">
  <div class="header">
    <div class="brand"><div class="logo" aria-hidden="true"></div>
      <div>
        <div class="h1">OpenClaw Log <span class="muted">/ daily notes</span></div>
        <div class="sub">Daily activity log (synced from Desktop)</div>
      </div>
    </div>
    <div class="nav">
      <a href="/en/">Home</a>
      <a href="/zh/">中文</a>
      <a href="/logs/">Logs</a>
      <a href="/en/tasks/">Tasks</a>
      <a href="/en/status/">Status</a>
      <a href="https://github.com/halewongai" target="_blank" rel="noreferrer">GitHub</a>
    </div>
  </div>

  <div class="card" style="margin-top:16px;">
    <h2>Index</h2>
    <div class="body">
      <ul>{{range .Items}}<li><a href="{{.Href}}">{{.Date}}</a></li>{{end}}</ul>
      <p class="muted">Notes are published as Markdown files.</p>
    </div>
  </div>

  <div class="footer">© <span id="y"></span> Assistant No.1</div>
</div>
<script src="/assets/site.js"></script>
</body></html>
`
