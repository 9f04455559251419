package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
)

//go:embed about.md
var aboutSource []byte

// Founder pairs a founder's portrait with the heading used in the About copy
type Founder struct {
	Name  string
	Image string
}

// Founders lists the portraits shown beside the About copy
func Founders() []Founder {
	return []Founder{
		{Name: "Chef Antonio Rossi", Image: "founders/rossi.jpg"},
		{Name: "Maria Lopez", Image: "founders/maria.jpg"},
	}
}

// RenderMarkdown converts Markdown to HTML. Raw HTML in the source is
// dropped by goldmark's default renderer.
func RenderMarkdown(source []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// About renders the About page body
func About() (template.HTML, error) {
	return RenderMarkdown(aboutSource)
}
