package render

import (
	"bytes"
	"html/template"

	"github.com/aaguilard28/cv-areli/internal/domain/cv"
	"github.com/aaguilard28/cv-areli/internal/domain/section"
	"github.com/aaguilard28/cv-areli/internal/domain/theme"
)

// DocumentHTML renders one version's document as a standalone HTML page,
// restricted to the enabled sections in their configured order, with the
// theme palette inlined as CSS custom properties.
func DocumentHTML(version cv.Version, sections []section.Config, selected theme.Config) (string, error) {
	data := pageData{
		Version:  version,
		Sections: sections,
		Theme:    selected,
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type pageData struct {
	Version  cv.Version
	Sections []section.Config
	Theme    theme.Config
}

var pageTemplate = template.Must(template.New("cv").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Version.Name}}</title>
<style>
:root {
  --theme-primary: {{.Theme.Colors.Primary}};
  --theme-secondary: {{.Theme.Colors.Secondary}};
  --theme-accent: {{.Theme.Colors.Accent}};
  --theme-text: {{.Theme.Colors.Text}};
  --theme-background: {{.Theme.Colors.Background}};
}
body { font-family: Helvetica, Arial, sans-serif; color: var(--theme-text); background: var(--theme-background); margin: 2rem; }
h1 { color: var(--theme-primary); border-bottom: 3px solid var(--theme-accent); padding-bottom: .3rem; }
h2 { color: var(--theme-secondary); margin-top: 1.4rem; }
ul { margin: .3rem 0; }
.entry { margin-bottom: .8rem; }
.entry .meta { color: var(--theme-secondary); font-size: .9rem; }
.tag { display: inline-block; background: var(--theme-primary); color: var(--theme-background); border-radius: 4px; padding: .1rem .5rem; margin: .12rem; font-size: .85rem; }
details { margin: .4rem 0; }
</style>
</head>
<body>
<h1>{{.Version.Name}}</h1>
{{$doc := .Version.Data}}
{{range .Sections}}
<section id="{{.ID}}">
<h2>{{.Title}}</h2>
{{if eq .ID "perfil"}}
<ul>{{range $doc.Profile}}<li>{{.Text}}</li>{{end}}</ul>
{{else if eq .ID "habilidades"}}
<div>{{range $doc.Skills.Management}}<span class="tag">{{.}}</span>{{end}}</div>
{{range $name, $tip := $doc.Skills.Tooltips}}<details><summary>{{$name}}</summary><p>{{$tip}}</p></details>{{end}}
{{else if eq .ID "experiencia"}}
{{range $doc.Experience}}<div class="entry"><strong>{{.Title}}</strong> — {{.Company}}{{if .Location}}, {{.Location}}{{end}}<div class="meta">{{.Date}}</div><ul>{{range .Description}}<li>{{.}}</li>{{end}}</ul></div>{{end}}
{{else if eq .ID "proyectos"}}
{{range $doc.Projects}}<div class="entry"><strong>{{.Title}}</strong><div class="meta">{{.Date}}</div><ul>{{range .Description}}<li>{{.}}</li>{{end}}</ul></div>{{end}}
{{else if eq .ID "educacion"}}
{{range $doc.Education}}<div class="entry"><strong>{{.Title}}</strong><div class="meta">{{.Period}}</div><ul>{{range .Description}}<li>{{.}}</li>{{end}}</ul></div>{{end}}
{{range $doc.OtherStudies}}<div class="entry">{{.}}</div>{{end}}
{{else if eq .ID "idiomas"}}
<ul>{{range $doc.Languages}}<li>{{.Language}}: {{.Proficiency}}</li>{{end}}</ul>
{{else if eq .ID "contacto"}}
<ul>
<li>{{$doc.Contact.Email}}</li>
<li>{{$doc.Contact.Phone}}</li>
<li>{{$doc.Contact.LinkedIn}}</li>
{{if $doc.Contact.CVUrl}}<li>{{$doc.Contact.CVUrl}}</li>{{end}}
</ul>
{{end}}
</section>
{{end}}
</body>
</html>`))
