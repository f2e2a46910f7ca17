package render

import (
	"embed"
	"html/template"
	"strings"

	"cv-builder/internal/profile"
)

// Built-in template identifiers.
const (
	TemplateClassic = "t1"
	TemplateSober   = "t2"
	TemplateModern  = "t3"
)

// DefaultTemplate is used for new sessions.
const DefaultTemplate = TemplateClassic

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var cvTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// KnownTemplate reports whether id names a built-in template.
func KnownTemplate(id string) bool {
	switch id {
	case TemplateClassic, TemplateSober, TemplateModern:
		return true
	}
	return false
}

// EffectiveTemplate resolves the template actually rendered: ATS mode always
// falls back to the sober layout regardless of the selected template.
func EffectiveTemplate(templateID string, atsMode bool) string {
	if atsMode {
		return TemplateSober
	}
	return templateID
}

// HTML renders the full CV document for the given profile. The returned
// markup is self-contained, with inline styles, so it can be printed to PDF
// without external assets.
func HTML(p profile.Profile, templateID string, atsMode bool) (string, error) {
	if !KnownTemplate(templateID) {
		return "", &UnknownTemplateError{TemplateID: templateID}
	}

	data := buildTemplateData(p, EffectiveTemplate(templateID, atsMode), atsMode)

	var result strings.Builder
	if err := cvTemplate.ExecuteTemplate(&result, "cv.html.tmpl", data); err != nil {
		return "", &TemplateError{Message: "failed to execute CV template", Cause: err}
	}
	return result.String(), nil
}
