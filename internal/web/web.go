package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/JunoAX/cafe-fausse/internal/admin"
	"github.com/JunoAX/cafe-fausse/internal/models"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Pages lists every page template; each is parsed together with the layout
var Pages = []string{"home", "menu", "about", "reservations", "admin", "gallery", "error"}

// Renderer implements gin's render.HTMLRender with one template set per
// page so each page can define its own blocks
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses all pages. assetsURL prefixes image paths passed to
// the asset template function.
func NewRenderer(assetsURL string) (*Renderer, error) {
	funcs := Funcs(assetsURL)
	r := &Renderer{pages: make(map[string]*template.Template, len(Pages))}
	for _, page := range Pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.gohtml", "templates/"+page+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Instance returns the render for a page, always executing the layout
func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.pages[name]
	if !ok {
		tmpl = r.pages["error"]
	}
	return render.HTML{Template: tmpl, Name: "layout", Data: data}
}

// Static returns the embedded stylesheet and friends, rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Funcs returns the template helpers shared by every page
func Funcs(assetsURL string) template.FuncMap {
	prefix := strings.TrimSuffix(assetsURL, "/")
	return template.FuncMap{
		"asset": func(p string) string {
			if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") || strings.HasPrefix(p, "/") {
				return p
			}
			segments := strings.Split(p, "/")
			for i, s := range segments {
				segments[i] = url.PathEscape(s)
			}
			return prefix + "/" + strings.Join(segments, "/")
		},
		"formatDay":      FormatDay,
		"formatTime":     FormatTime,
		"formatDateTime": FormatDateTime,
		"plural":         Plural,
		"year":           func() int { return time.Now().Year() },
	}
}

// FormatDay renders a day header, e.g. "Wednesday, May 1, 2024"
func FormatDay(t time.Time) string {
	return t.Format("Monday, Jan 2, 2006")
}

// FormatTime renders a slot header, e.g. "7:00 PM"
func FormatTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatDateTime renders a raw timestamp token for display. Tokens that
// do not parse are shown as sent, and empty ones as the placeholder.
func FormatDateTime(token string) string {
	if token == "" {
		return models.Placeholder
	}
	t, err := admin.ParseTimeSlot(token)
	if err != nil {
		return token
	}
	return t.Format("Jan 2, 2006, 3:04 PM")
}

// Plural renders "1 reservation" or "N reservations"
func Plural(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
