package ui

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded storefront views. All dynamic text passes
// through html/template's contextual escaping.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.tmpl"))
}
