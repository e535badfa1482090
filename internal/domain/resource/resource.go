// Package resource provides the domain model for external learning resources.
package resource

import "gopkg.in/yaml.v3"

// Type is the kind of learning asset.
type Type string

const (
	TypeArticle       Type = "article"
	TypeVideo         Type = "video"
	TypeTutorial      Type = "tutorial"
	TypeDocumentation Type = "documentation"
	TypeCourse        Type = "course"
)

// Resource is an external article, video, tutorial, documentation site or course.
type Resource struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	TitleEN     string   `json:"title_en,omitempty" yaml:"title_en"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	Type        Type     `json:"type" yaml:"type"`
	Author      string   `json:"author,omitempty" yaml:"author"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Clone returns a copy that shares no slices with r.
func (r *Resource) Clone() Resource {
	out := *r
	out.Tags = append([]string{}, r.Tags...)
	return out
}

// UnmarshalYAML decodes a resource and normalizes absent tags to an empty set.
func (r *Resource) UnmarshalYAML(node *yaml.Node) error {
	type plain Resource
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	*r = Resource(p)
	return nil
}

// TypeInfo is one entry of the type catalog.
type TypeInfo struct {
	ID    Type   `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// Types returns the fixed resource type catalog in display order.
func Types() []TypeInfo {
	return []TypeInfo{
		{ID: TypeArticle, Name: "文章", Emoji: "📄"},
		{ID: TypeVideo, Name: "视频", Emoji: "📺"},
		{ID: TypeTutorial, Name: "教程", Emoji: "📚"},
		{ID: TypeDocumentation, Name: "文档", Emoji: "📖"},
		{ID: TypeCourse, Name: "课程", Emoji: "🎓"},
	}
}
