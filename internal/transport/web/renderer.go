package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates
var templatesFS embed.FS

// Data carries the values a view is rendered with. Handlers populate the
// keys their template expects (User, Role, Category, Categories, States,
// Flashes).
type Data map[string]any

// Renderer executes the embedded HTML views. Each page template defines a
// "content" block composed into the shared layout.
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	entries, err := templatesFS.ReadDir("templates/pages")
	if err != nil {
		return nil, fmt.Errorf("read page templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		tpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/pages/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tpl
	}

	return &Renderer{pages: pages, logger: logger}, nil
}

// Render writes the named page with the given status. Render failures are
// reported as a plain 500 since there is no view to fall back to.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Data) {
	tpl, ok := r.pages[page]
	if !ok {
		r.logger.Error("unknown view template", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// render to a buffer first so a template error cannot produce a
	// half-written page
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.logger.Error("view render failed", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error("view write failed", "page", page, "error", err)
	}
}
