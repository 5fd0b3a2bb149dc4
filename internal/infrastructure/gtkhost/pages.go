package gtkhost

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/bnema/meikai/internal/application/port"
)

//go:embed pages/*.html pages/bridge.js
var pagesFS embed.FS

var (
	pagesOnce sync.Once
	pages     *template.Template
	pagesErr  error
)

// pageData is exposed to the built-in pages, both as template fields and
// as a JSON object in script context.
type pageData struct {
	Title        string `json:"title"`
	WindowLabel  string `json:"windowLabel"`
	ContentLabel string `json:"contentLabel"`
	URL          string `json:"url"`
}

func loadPages() (*template.Template, error) {
	pagesOnce.Do(func() {
		pages, pagesErr = template.ParseFS(pagesFS, "pages/*.html", "pages/bridge.js")
	})
	return pages, pagesErr
}

// renderPage returns the HTML document for a built-in surface.
func renderPage(spec port.SurfaceSpec, title string) (string, error) {
	var name string
	switch spec.Kind {
	case port.SurfaceTitleBar:
		name = "titlebar"
	case port.SurfacePanel:
		name = "panel"
	default:
		return "", fmt.Errorf("surface kind %s has no built-in page", spec.Kind)
	}

	tmpl, err := loadPages()
	if err != nil {
		return "", fmt.Errorf("failed to parse pages: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, pageData{
		Title:        title,
		WindowLabel:  spec.WindowLabel,
		ContentLabel: spec.ContentLabel,
		URL:          spec.URL,
	}); err != nil {
		return "", fmt.Errorf("failed to render %s page: %w", name, err)
	}
	return buf.String(), nil
}
