// Package web holds the HTML templates rendered by the photo handlers.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed templates
var templatesFS embed.FS

// Page names accepted by Templates.Render.
const (
	PageHome = "home.html"
	PageShow = "show.html"
)

var pages = []string{PageHome, PageShow}

// Templates is the set of parsed pages. It is built once at start-up and is
// safe for concurrent use.
type Templates struct {
	pages map[string]*template.Template
}

// New parses every page together with the shared layout.
func New() (*Templates, error) {
	t := &Templates{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New(page).
			Funcs(template.FuncMap{"formatDate": formatDate}).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		t.pages[page] = tmpl
	}
	return t, nil
}

// Render executes the named page with data.
func (t *Templates) Render(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

func formatDate(ts time.Time) string {
	return ts.Format("2006-01-02 15:04:05 MST")
}
