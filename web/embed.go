// Package web holds the page templates and static assets compiled into the binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template with the site helpers.
// The date helper takes the locale's month names.
func Templates(date func(t time.Time, months []string) string) (*template.Template, error) {
	funcs := template.FuncMap{
		"date": date,
		// Post bodies are rendered from trusted sources before they reach the page.
		"html": func(s string) template.HTML { return template.HTML(s) },
	}
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// Static is the asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
