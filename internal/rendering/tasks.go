package rendering

import (
	"strings"
	"text/template"

	"github.com/halewongai/site-sync/internal/types"
)

// taskItem is one pre-escaped task list entry.
type taskItem struct {
	Status string // css class: open | done
	Badge  string // OPEN | DONE
	Text   string
	Meta   string
	Note   string
}

// tasksPage is the fully escaped data handed to the tasks template.
type tasksPage struct {
	HTMLLang  string
	Title     string
	Brand     string
	Subtitle  string
	Lang      string
	Home      string
	OtherHref string
	OtherLang string

	Heading string
	Updated string
	Hint    string
	Tasks   []taskItem
	Empty   string // empty-state text; "" when tasks exist
}

var tasksTmpl = template.Must(template.New("tasks").Parse(tasksTemplate))

// RenderTasks renders the task page for one language. The caller supplies
// the tasks already in display order and the updated stamp, so two runs over
// identical input produce identical bytes.
func RenderTasks(lang Lang, list []types.Task, updated string) (string, error) {
	data := buildTasksPage(lang, list, updated)

	var result strings.Builder
	if err := tasksTmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Message: "failed to execute tasks template", Cause: err}
	}
	return result.String(), nil
}

// buildTasksPage is the escaping chokepoint for the task page.
func buildTasksPage(lang Lang, list []types.Task, updated string) *tasksPage {
	page := &tasksPage{
		HTMLLang:  lang.htmlLang(),
		Title:     lang.pick("Tasks · Assistant No.1", "Tasks · 一号助理"),
		Brand:     lang.pick("Assistant No.1", "一号助理"),
		Subtitle:  lang.pick("Task list (persisted automatically; no reminders by default)", "任务清单（自动沉淀，默认不提醒）"),
		Lang:      lang.path(),
		Home:      lang.pick("Home", "首页"),
		OtherHref: "/" + lang.other().path() + "/tasks/",
		OtherLang: lang.otherLabel(),

		Heading: lang.pick("Task list", "任务清单"),
		Updated: EscapeHTML(updated),
		Hint: EscapeHTML(lang.pick(
			"Input: send '任务: ...' or 'todo: ...' in Telegram. No reminders by default; tasks are persisted to this page.",
			"入口：Telegram 发『任务：...』或『todo: ...』；默认不提醒，只沉淀到页面。",
		)),
	}

	for _, t := range list {
		status := t.NormalizedStatus()
		badge := "OPEN"
		if status == types.StatusDone {
			badge = "DONE"
		}

		var metaBits []string
		if t.CreatedAt != "" {
			metaBits = append(metaBits, "created: "+EscapeHTML(t.CreatedAt))
		}
		if t.DueAt != "" {
			metaBits = append(metaBits, "due: "+EscapeHTML(t.DueAt))
		}
		if t.Owner != "" {
			metaBits = append(metaBits, "owner: "+EscapeHTML(t.Owner))
		}

		page.Tasks = append(page.Tasks, taskItem{
			Status: status,
			Badge:  badge,
			Text:   EscapeHTML(t.Text),
			Meta:   strings.Join(metaBits, " · "),
			Note:   EscapeHTML(t.Note),
		})
	}

	if len(page.Tasks) == 0 {
		page.Empty = lang.pick("No tasks yet", "暂无任务")
	}

	return page
}

const tasksTemplate = `<!doctype html>
<html lang='{{.HTMLLang}}'>
<head>
  <meta charset='utf-8' />
  <meta name='viewport' content='width=device-width, initial-scale=1' />
  <title>{{.Title}}</title>
  <link rel='stylesheet' href='/assets/style.css' />
  <style>
    .tasks-head { display:flex; align-items:baseline; justify-content:space-between; gap:12px; }
    ul.tasks { list-style:none; padding:0; margin:0; }
    .task { padding:14px 14px; border:1px solid rgba(255,255,255,0.08); border-radius:12px; margin-bottom:10px; background:rgba(255,255,255,0.03); }
    .task.done { opacity:0.7; }
    .task-top { display:flex; gap:10px; align-items:flex-start; }
    .badge { font-size:12px; padding:2px 8px; border-radius:999px; border:1px solid rgba(255,255,255,0.18); }
    .task-text { font-size:15px; }
    .task-meta { margin-top:6px; font-size:12px; color:rgba(255,255,255,0.65); }
    .task-note { margin-top:8px; font-size:13px; color:rgba(255,255,255,0.85); white-space:pre-wrap; }
  </style>
</head>
<body>
  <div class='wrap'>
    <div class='header'>
      <div class='brand'>
        <div class='logo' aria-hidden='true'></div>
        <div>
          <div class='h1'>{{.Brand}} <span class='muted'>/ Tasks</span></div>
          <div class='sub'>{{.Subtitle}}</div>
        </div>
      </div>
      <div class='nav'>
        <a href='/{{.Lang}}/'>{{.Home}}</a>
        <a href='/{{.Lang}}/projects/'>Projects</a>
        <a href='/{{.Lang}}/research/'>Research</a>
        <a href='/{{.Lang}}/automation/'>Automation</a>
        <a href='/{{.Lang}}/usage/'>Usage</a>
        <a href='/logs/'>Logs</a>
        <a href='{{.OtherHref}}'>{{.OtherLang}}</a>
      </div>
    </div>

    <div class='grid'>
      <section class='card' style='grid-column:1/-1'>
        <div class='tasks-head'>
          <h2 style='margin:0'>{{.Heading}}</h2>
          <div class='muted' style='font-size:12px'>updated: {{.Updated}}</div>
        </div>
        <div class='body'>
          <div class='muted' style='margin-bottom:10px'>{{.Hint}}</div>
          <ul class='tasks'>
{{range .Tasks}}            <li class='task {{.Status}}'><div class='task-top'><span class='badge'>{{.Badge}}</span><span class='task-text'>{{.Text}}</span></div><div class='task-meta'>{{.Meta}}</div>{{if .Note}}<div class='task-note'>{{.Note}}</div>{{end}}</li>
{{end}}{{if .Empty}}            <div class='muted'>{{.Empty}}</div>
{{end}}          </ul>
        </div>
      </section>
    </div>

    <div class='footer'>© <span id='y'></span> {{.Brand}} · Tasks</div>
  </div>

  <script src='/assets/site.js'></script>
</body>
</html>
`
