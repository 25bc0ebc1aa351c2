package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates. Each page is a
// standalone template addressed by its file name.
func Templates() (*template.Template, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}
	return tpl, nil
}
