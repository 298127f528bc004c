// Package web holds the embedded page templates.
package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var files embed.FS

// Pages rendered through the shared layout. Each name is both the
// template file and the name passed to c.HTML.
var Pages = []string{"index", "services", "gallery", "login", "booking", "profile", "admin"}

var funcs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
}

// Renderer gives every page its own template set so each can define its
// own "content" block.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(Pages))}
	for _, page := range Pages {
		t, err := template.New(page).Funcs(funcs).ParseFS(files,
			"templates/layout.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		panic(fmt.Sprintf("web: unknown page template %q", name))
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

var _ render.HTMLRender = (*Renderer)(nil)
