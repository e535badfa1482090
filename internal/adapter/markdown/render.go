// Package markdown renders guide markdown to HTML with goldmark.
package markdown

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Strob0t/codeguide/internal/domain/guide"
)

// Renderer converts markdown to HTML. Raw HTML in the input is omitted.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a Renderer with GitHub-flavored markdown enabled.
func New() *Renderer {
	return &Renderer{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Render converts src to HTML.
func (r *Renderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderSection returns a copy of s with ContentHTML set on the section and
// each subsection. Content that fails to render is escaped instead.
func (r *Renderer) RenderSection(s *guide.Section) guide.Section {
	out := s.Clone()
	out.ContentHTML = r.renderOrEscape(out.Content)
	for i := range out.SubSections {
		out.SubSections[i].ContentHTML = r.renderOrEscape(out.SubSections[i].Content)
	}
	return out
}

func (r *Renderer) renderOrEscape(src string) string {
	h, err := r.Render(src)
	if err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}
	return h
}
