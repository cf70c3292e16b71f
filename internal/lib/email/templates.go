package email

import "embed"

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateWelcome corresponds to templates/emails/welcome.html
	TemplateWelcome Template = "welcome"
)

//go:embed templates/emails/*.html
var templateFS embed.FS

// PreviewData holds sample data per template, used by tests and local previews.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"Username": "johndoe",
	},
}
