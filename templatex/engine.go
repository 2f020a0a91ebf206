// Package templatex holds the embedded HTML shell shared by every generated page.
package templatex

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed layout.html
var layoutFS embed.FS

// LayoutTemplate is the name of the page shell template.
const LayoutTemplate = "layout"

// PageData represents the data model expected by the shell layout.
//
// Navigation and Content are pre-rendered fragments; everything else is
// escaped by the template engine on substitution.
type PageData struct {
	Title        string
	SiteTitle    string
	SiteName     string
	SiteSubtitle string
	FooterText   string
	BasePath     string
	Navigation   template.HTML
	Content      template.HTML
}

// Engine is a thin wrapper around the parsed shell template.
type Engine struct {
	templates *template.Template
}

// Load parses the embedded shell layout.
func Load() (*Engine, error) {
	tpl, err := template.ParseFS(layoutFS, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if tpl.Lookup(LayoutTemplate) == nil {
		return nil, fmt.Errorf("template %q is not defined", LayoutTemplate)
	}
	return &Engine{templates: tpl}, nil
}

// Render writes the assembled page into w.
func (e *Engine) Render(w io.Writer, data *PageData) error {
	if e.templates == nil {
		return fmt.Errorf("template engine not initialized")
	}
	return e.templates.ExecuteTemplate(w, LayoutTemplate, data)
}
