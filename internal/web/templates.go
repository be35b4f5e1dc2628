package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime"

	"thinkboard/internal/render"
)

type Templates struct {
	all *template.Template
}

func MustParseTemplates(md *render.Markdown) *Templates {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("unable to resolve template path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
	glob := filepath.Join(root, "templates", "*.html")

	t := template.New("").Funcs(template.FuncMap{
		"markdown":  md.HTML,
		"dateLabel": render.DateLabel,
		"excerpt":   render.Excerpt,
	})
	t = template.Must(t.ParseGlob(glob))
	return &Templates{all: t}
}

func (t *Templates) RenderPage(w http.ResponseWriter, data ViewData) {
	t.RenderPageStatus(w, http.StatusOK, data)
}

// RenderPageStatus renders data.ContentTemplate inside the base layout.
// Nothing is written until both templates succeed.
func (t *Templates) RenderPageStatus(w http.ResponseWriter, status int, data ViewData) {
	var content bytes.Buffer
	if err := t.all.ExecuteTemplate(&content, data.ContentTemplate, data); err != nil {
		slog.Error("render content", "template", data.ContentTemplate, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	pageData := data
	pageData.ContentHTML = template.HTML(content.String())
	var page bytes.Buffer
	if err := t.all.ExecuteTemplate(&page, "base", pageData); err != nil {
		slog.Error("render page", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = page.WriteTo(w)
}

func (t *Templates) RenderTemplate(w http.ResponseWriter, name string, data ViewData) {
	var out bytes.Buffer
	if err := t.all.ExecuteTemplate(&out, name, data); err != nil {
		slog.Error("render template", "template", name, "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = out.WriteTo(w)
}
