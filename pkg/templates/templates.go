package templates

import (
	"html/template"
	"strings"

	"github.com/artem13815/resume-screening/pkg/errs"
	"github.com/artem13815/resume-screening/pkg/resume"
)

// Info описывает шаблон для выдачи списка клиенту.
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List возвращает доступные шаблоны в порядке идентификаторов.
func List() []Info {
	return []Info{
		{ID: "1", Name: "classic", Description: "Серифный двухколоночный макет с датами справа"},
		{ID: "2", Name: "compact", Description: "Плотный одностраничный макет без украшений"},
		{ID: "3", Name: "modern", Description: "Сансерифный макет с цветными акцентами"},
	}
}

// Render отдаёт резюме как самодостаточную HTML-страницу.
// Идентификаторы шаблонов: 1 — classic, 2 — compact, 3 — modern.
func Render(rec resume.Record, templateID string) (string, error) {
	rec.Normalize()
	tpl, ok := registry[strings.TrimSpace(templateID)]
	if !ok {
		return "", errs.Newf(errs.KindValidation, "unknown template %q", templateID)
	}
	var b strings.Builder
	if err := tpl.Execute(&b, rec); err != nil {
		return "", errs.Wrap(errs.KindInternal, "template render failed", err)
	}
	return b.String(), nil
}

var registry = map[string]*template.Template{
	"":  classicTemplate,
	"1": classicTemplate,
	"2": compactTemplate,
	"3": modernTemplate,
}

var classicTemplate = template.Must(template.New("classic").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}} — Resume</title>
<style>
body { font-family: Georgia, serif; max-width: 800px; margin: 2rem auto; color: #222; }
h1 { border-bottom: 2px solid #222; padding-bottom: .3rem; }
h2 { color: #444; margin-top: 1.5rem; }
.meta { color: #666; }
.entry { margin-bottom: 1rem; }
.dates { float: right; color: #888; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<p class="meta">{{.Email}}{{range .Links}} · <a href="{{.}}">{{.}}</a>{{end}}</p>
{{if .Experience}}<h2>Experience</h2>
{{range .Experience}}<div class="entry">
<span class="dates">{{.StartDate}} – {{if .EndDate}}{{.EndDate}}{{else}}present{{end}}</span>
<strong>{{.Title}}</strong>, {{.Company}}
<p>{{.Description}}</p>
</div>
{{end}}{{end}}
{{if .Education}}<h2>Education</h2>
{{range .Education}}<div class="entry">
<span class="dates">{{.StartDate}} – {{.EndDate}}</span>
<strong>{{.Degree}}</strong>, {{.Institution}}
</div>
{{end}}{{end}}
{{if .TechnicalSkills}}<h2>Technical Skills</h2>
<ul>{{range $cat, $skills := .TechnicalSkills}}<li><strong>{{$cat}}:</strong> {{range $i, $s := $skills}}{{if $i}}, {{end}}{{$s}}{{end}}</li>{{end}}</ul>
{{end}}
{{if .KeyAccomplishments}}<h2>Key Accomplishments</h2>
<p>{{.KeyAccomplishments}}</p>
{{end}}
</body>
</html>
`))

var compactTemplate = template.Must(template.New("compact").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; max-width: 700px; margin: 1rem auto; font-size: 14px; }
h1 { margin-bottom: 0; }
h2 { font-size: 1rem; text-transform: uppercase; letter-spacing: .05em; border-bottom: 1px solid #ccc; }
p { margin: .2rem 0; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<p>{{.Email}}{{range .Links}} | {{.}}{{end}}</p>
{{if .TechnicalSkills}}<h2>Skills</h2>
{{range $cat, $skills := .TechnicalSkills}}<p><strong>{{$cat}}</strong>: {{range $i, $s := $skills}}{{if $i}}, {{end}}{{$s}}{{end}}</p>{{end}}
{{end}}
{{if .Experience}}<h2>Experience</h2>
{{range .Experience}}<p><strong>{{.Title}}</strong> @ {{.Company}} ({{.StartDate}} – {{if .EndDate}}{{.EndDate}}{{else}}present{{end}})</p><p>{{.Description}}</p>{{end}}
{{end}}
{{if .Education}}<h2>Education</h2>
{{range .Education}}<p>{{.Degree}}, {{.Institution}} ({{.StartDate}} – {{.EndDate}})</p>{{end}}
{{end}}
{{if .KeyAccomplishments}}<h2>Accomplishments</h2><p>{{.KeyAccomplishments}}</p>{{end}}
</body>
</html>
`))

var modernTemplate = template.Must(template.New("modern").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style>
body { font-family: 'Segoe UI', Roboto, sans-serif; max-width: 760px; margin: 2rem auto; color: #1a1a2e; }
h1 { color: #0f3460; margin-bottom: .2rem; }
h2 { color: #e94560; font-size: 1.05rem; text-transform: uppercase; letter-spacing: .08em; margin-top: 1.4rem; }
.meta { color: #53567a; margin-top: 0; }
.entry { margin-bottom: .9rem; padding-left: .8rem; border-left: 3px solid #0f3460; }
.dates { color: #53567a; font-size: .85rem; }
.tag { display: inline-block; background: #eef1f8; border-radius: 3px; padding: .1rem .45rem; margin: .1rem; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<p class="meta">{{.Email}}{{range .Links}} · <a href="{{.}}">{{.}}</a>{{end}}</p>
{{if .TechnicalSkills}}<h2>Skills</h2>
{{range $cat, $skills := .TechnicalSkills}}<p><strong>{{$cat}}</strong>: {{range $skills}}<span class="tag">{{.}}</span>{{end}}</p>{{end}}
{{end}}
{{if .Experience}}<h2>Experience</h2>
{{range .Experience}}<div class="entry">
<strong>{{.Title}}</strong>, {{.Company}}
<div class="dates">{{.StartDate}} – {{if .EndDate}}{{.EndDate}}{{else}}present{{end}}</div>
<p>{{.Description}}</p>
</div>
{{end}}{{end}}
{{if .Education}}<h2>Education</h2>
{{range .Education}}<div class="entry">
<strong>{{.Degree}}</strong>, {{.Institution}}
<div class="dates">{{.StartDate}} – {{.EndDate}}</div>
</div>
{{end}}{{end}}
{{if .KeyAccomplishments}}<h2>Highlights</h2>
<p>{{.KeyAccomplishments}}</p>
{{end}}
</body>
</html>
`))
