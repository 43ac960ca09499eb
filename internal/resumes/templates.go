package resumes

import (
	"bytes"
	"html/template"

	"jumysal-backend/internal/profiles"
)

// Deterministic fallback templates, one per style. Rendering goes through
// html/template so arbitrary profile text cannot break the markup.

const standardTemplate = `<div style="font-family: Arial, sans-serif; color: #1f2937; padding: 32px; max-width: 760px;">
  <div style="border-bottom: 2px solid #6b7280; padding-bottom: 16px;">
    <h1 style="margin: 0; font-size: 28px;">{{.DisplayName}}</h1>
    <p style="margin: 4px 0; color: #4b5563;">{{.Position}} · {{.Location}}</p>
    <p style="margin: 4px 0; color: #4b5563;">{{.Email}}</p>
  </div>
  <div style="margin-top: 20px;">
    <h2 style="font-size: 18px; color: #374151;">Образование</h2>
    {{if .Institution}}<p style="margin: 4px 0;">{{.Institution}}{{if .GraduationYear}}, {{.GraduationYear}}{{end}}</p>{{end}}
    {{range .Education}}<p style="margin: 4px 0;">{{.}}</p>{{end}}
  </div>
  <div style="margin-top: 20px;">
    <h2 style="font-size: 18px; color: #374151;">Навыки</h2>
    <ul style="margin: 4px 0; padding-left: 20px;">{{range .Skills}}<li>{{.}}</li>{{end}}</ul>
  </div>
  {{if .Experience}}<div style="margin-top: 20px;">
    <h2 style="font-size: 18px; color: #374151;">Опыт работы</h2>
    {{range .Experience}}<p style="margin: 4px 0;">{{.}}</p>{{end}}
  </div>{{end}}
  <div style="margin-top: 20px;">
    <h2 style="font-size: 18px; color: #374151;">Языки</h2>
    <p style="margin: 4px 0;">{{range $i, $l := .Languages}}{{if $i}}, {{end}}{{$l}}{{end}}</p>
  </div>
  {{if .Interests}}<div style="margin-top: 20px;">
    <h2 style="font-size: 18px; color: #374151;">Интересы</h2>
    <p style="margin: 4px 0;">{{range $i, $v := .Interests}}{{if $i}}, {{end}}{{$v}}{{end}}</p>
  </div>{{end}}
</div>`

const professionalTemplate = `<div style="font-family: 'Times New Roman', serif; color: #111827; padding: 36px; max-width: 760px;">
  <div style="background: #1e3a5f; color: #ffffff; padding: 20px;">
    <h1 style="margin: 0; font-size: 26px; letter-spacing: 1px;">{{.DisplayName}}</h1>
    <p style="margin: 6px 0 0;">{{.Position}} — {{.Location}} — {{.Email}}</p>
  </div>
  <div style="margin-top: 24px;">
    <h2 style="font-size: 16px; text-transform: uppercase; border-bottom: 1px solid #1e3a5f;">Образование</h2>
    {{if .Institution}}<p style="margin: 6px 0;">{{.Institution}}{{if .GraduationYear}} ({{.GraduationYear}}){{end}}</p>{{end}}
    {{range .Education}}<p style="margin: 6px 0;">{{.}}</p>{{end}}
  </div>
  <div style="margin-top: 24px;">
    <h2 style="font-size: 16px; text-transform: uppercase; border-bottom: 1px solid #1e3a5f;">Навыки</h2>
    <p style="margin: 6px 0;">{{range $i, $s := .Skills}}{{if $i}} · {{end}}{{$s}}{{end}}</p>
  </div>
  {{if .Experience}}<div style="margin-top: 24px;">
    <h2 style="font-size: 16px; text-transform: uppercase; border-bottom: 1px solid #1e3a5f;">Опыт работы</h2>
    {{range .Experience}}<p style="margin: 6px 0;">{{.}}</p>{{end}}
  </div>{{end}}
  <div style="margin-top: 24px;">
    <h2 style="font-size: 16px; text-transform: uppercase; border-bottom: 1px solid #1e3a5f;">Языки</h2>
    <p style="margin: 6px 0;">{{range $i, $l := .Languages}}{{if $i}}, {{end}}{{$l}}{{end}}</p>
  </div>
  {{if .Interests}}<div style="margin-top: 24px;">
    <h2 style="font-size: 16px; text-transform: uppercase; border-bottom: 1px solid #1e3a5f;">Интересы</h2>
    <p style="margin: 6px 0;">{{range $i, $v := .Interests}}{{if $i}}, {{end}}{{$v}}{{end}}</p>
  </div>{{end}}
</div>`

const academicTemplate = `<div style="font-family: Georgia, serif; color: #1c1917; padding: 40px; max-width: 720px;">
  <div style="text-align: center; border-bottom: 3px double #78716c; padding-bottom: 18px;">
    <h1 style="margin: 0; font-size: 30px;">{{.DisplayName}}</h1>
    <p style="margin: 6px 0; font-style: italic;">{{.Position}}</p>
    <p style="margin: 2px 0;">{{.Location}} · {{.Email}}</p>
  </div>
  <div style="margin-top: 22px;">
    <h2 style="font-size: 17px; font-variant: small-caps;">Образование</h2>
    {{if .Institution}}<p style="margin: 4px 0;">{{.Institution}}{{if .GraduationYear}}, выпуск {{.GraduationYear}}{{end}}</p>{{end}}
    {{range .Education}}<p style="margin: 4px 0;">{{.}}</p>{{end}}
  </div>
  <div style="margin-top: 22px;">
    <h2 style="font-size: 17px; font-variant: small-caps;">Навыки</h2>
    <ul style="margin: 4px 0; padding-left: 22px;">{{range .Skills}}<li>{{.}}</li>{{end}}</ul>
  </div>
  {{if .Experience}}<div style="margin-top: 22px;">
    <h2 style="font-size: 17px; font-variant: small-caps;">Опыт работы</h2>
    {{range .Experience}}<p style="margin: 4px 0;">{{.}}</p>{{end}}
  </div>{{end}}
  <div style="margin-top: 22px;">
    <h2 style="font-size: 17px; font-variant: small-caps;">Языки</h2>
    <p style="margin: 4px 0;">{{range $i, $l := .Languages}}{{if $i}}, {{end}}{{$l}}{{end}}</p>
  </div>
  {{if .Interests}}<div style="margin-top: 22px;">
    <h2 style="font-size: 17px; font-variant: small-caps;">Интересы</h2>
    <p style="margin: 4px 0;">{{range $i, $v := .Interests}}{{if $i}}, {{end}}{{$v}}{{end}}</p>
  </div>{{end}}
</div>`

const modernTemplate = `<div style="font-family: 'Segoe UI', sans-serif; color: #0f172a; padding: 28px; max-width: 780px;">
  <div style="border-left: 6px solid #2563eb; padding-left: 18px;">
    <h1 style="margin: 0; font-size: 32px; color: #2563eb;">{{.DisplayName}}</h1>
    <p style="margin: 6px 0; font-size: 15px;">{{.Position}} · {{.Location}}</p>
    <p style="margin: 2px 0; font-size: 14px; color: #475569;">{{.Email}}{{if .LinkedInURL}} · {{.LinkedInURL}}{{end}}</p>
  </div>
  <div style="margin-top: 24px;">
    <h2 style="font-size: 19px; color: #2563eb;">Образование</h2>
    {{if .Institution}}<p style="margin: 4px 0;">{{.Institution}}{{if .GraduationYear}}, {{.GraduationYear}}{{end}}</p>{{end}}
    {{range .Education}}<p style="margin: 4px 0;">{{.}}</p>{{end}}
  </div>
  <div style="margin-top: 24px;">
    <h2 style="font-size: 19px; color: #2563eb;">Навыки</h2>
    <p style="margin: 4px 0;">{{range $i, $s := .Skills}}{{if $i}} • {{end}}{{$s}}{{end}}</p>
  </div>
  {{if .Experience}}<div style="margin-top: 24px;">
    <h2 style="font-size: 19px; color: #2563eb;">Опыт работы</h2>
    {{range .Experience}}<p style="margin: 4px 0;">{{.}}</p>{{end}}
  </div>{{end}}
  <div style="margin-top: 24px;">
    <h2 style="font-size: 19px; color: #2563eb;">Языки</h2>
    <p style="margin: 4px 0;">{{range $i, $l := .Languages}}{{if $i}}, {{end}}{{$l}}{{end}}</p>
  </div>
  {{if .Interests}}<div style="margin-top: 24px;">
    <h2 style="font-size: 19px; color: #2563eb;">Интересы</h2>
    <p style="margin: 4px 0;">{{range $i, $v := .Interests}}{{if $i}}, {{end}}{{$v}}{{end}}</p>
  </div>{{end}}
</div>`

var styleTemplates = map[Style]*template.Template{
	StyleStandard:     template.Must(template.New("standard").Parse(standardTemplate)),
	StyleProfessional: template.Must(template.New("professional").Parse(professionalTemplate)),
	StyleAcademic:     template.Must(template.New("academic").Parse(academicTemplate)),
	StyleModern:       template.Must(template.New("modern").Parse(modernTemplate)),
}

// RenderTemplate renders the deterministic fallback resume for the given
// style. Styles without a template (including "creative") use the modern
// layout. Total over its inputs: it never fails.
func RenderTemplate(style Style, snap profiles.Snapshot) string {
	tpl, ok := styleTemplates[style]
	if !ok {
		tpl = styleTemplates[StyleModern]
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, snap); err != nil {
		// Static templates over plain data; execution cannot realistically
		// fail, but never return an empty resume.
		return "<div><h1>" + template.HTMLEscapeString(snap.DisplayName) + "</h1><p>" + template.HTMLEscapeString(snap.Email) + "</p></div>"
	}
	return buf.String()
}
