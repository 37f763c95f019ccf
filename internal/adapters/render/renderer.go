package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	texttemplate "text/template"
	"time"

	"quickconf/internal/domain"
	"quickconf/internal/schedule"
)

//go:embed templates/*
var templateFS embed.FS

// templateRenderer implements domain.TemplateRenderer using embedded template files.
// Files ending in .html are parsed with html/template, all others with text/template.
type templateRenderer struct {
	html *template.Template
	text *texttemplate.Template
}

var funcs = map[string]any{
	"formatHour": schedule.FormatHour,
	"clock": func(t time.Time) string {
		return t.Format("15:04")
	},
	"readableDate": func(iso string) string {
		d, err := time.Parse(time.DateOnly, iso)
		if err != nil {
			return ""
		}
		return d.Format("Monday, January 2, 2006")
	},
	"speakerNames": func(speakers []*domain.Speaker) string {
		names := make([]string, 0, len(speakers))
		for _, s := range speakers {
			names = append(names, s.Name)
		}
		return strings.Join(names, ", ")
	},
	"hourHeight": func() int { return schedule.HourHeight },
	"headerHeight": func() int { return schedule.HeaderHeight },
}

// NewTemplateRenderer parses the embedded templates folder.
func NewTemplateRenderer() (domain.TemplateRenderer, error) {
	h, err := template.New("html").Funcs(template.FuncMap(funcs)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	t, err := texttemplate.New("text").Funcs(texttemplate.FuncMap(funcs)).ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &templateRenderer{html: h, text: t}, nil
}

// RenderHTML executes the named HTML template (e.g. "schedule.html").
func (r *templateRenderer) RenderHTML(w io.Writer, name string, data any) error {
	if r.html.Lookup(name) == nil {
		return fmt.Errorf("unknown html template %q", name)
	}
	return r.html.ExecuteTemplate(w, name, data)
}

// RenderText executes the named text template (e.g. "humans.txt").
func (r *templateRenderer) RenderText(w io.Writer, name string, data any) error {
	if r.text.Lookup(name) == nil {
		return fmt.Errorf("unknown text template %q", name)
	}
	return r.text.ExecuteTemplate(w, name, data)
}
