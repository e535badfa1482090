// Package guide provides the domain model for chapters of the learning guide.
package guide

import "gopkg.in/yaml.v3"

// Section is one chapter of the guide. Content is markdown.
type Section struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Emoji       string       `json:"emoji,omitempty" yaml:"emoji"`
	Summary     string       `json:"summary" yaml:"summary"`
	Content     string       `json:"content" yaml:"content"`
	ContentHTML string       `json:"content_html,omitempty" yaml:"-"`
	SubSections []SubSection `json:"subsections" yaml:"subsections"`
	Order       int          `json:"order" yaml:"order"`
}

// SubSection is a titled part of a Section.
type SubSection struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Content     string `json:"content" yaml:"content"`
	ContentHTML string `json:"content_html,omitempty" yaml:"-"`
}

// Clone returns a deep copy so callers may modify the result freely.
func (s *Section) Clone() Section {
	out := *s
	out.SubSections = make([]SubSection, len(s.SubSections))
	copy(out.SubSections, s.SubSections)
	return out
}

// UnmarshalYAML decodes a section and normalizes absent subsections to an empty list.
func (s *Section) UnmarshalYAML(node *yaml.Node) error {
	type plain Section
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	if p.SubSections == nil {
		p.SubSections = []SubSection{}
	}
	*s = Section(p)
	return nil
}
