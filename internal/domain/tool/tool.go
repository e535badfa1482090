// Package tool provides the domain model for the curated tool directory.
package tool

import "gopkg.in/yaml.v3"

// Category groups tools by how they are used.
type Category string

const (
	CategoryEditor Category = "editor"
	CategoryCLI    Category = "cli"
	CategoryWebApp Category = "webapp"
	CategoryAgent  Category = "agent"
	CategoryHelper Category = "helper"
)

// Tool is a third-party product listed in the directory.
type Tool struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	NameEN      string   `json:"name_en,omitempty" yaml:"name_en"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	Category    Category `json:"category" yaml:"category"`
	IsFree      bool     `json:"is_free" yaml:"is_free"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Clone returns a copy that shares no slices with t.
func (t *Tool) Clone() Tool {
	out := *t
	out.Tags = append([]string{}, t.Tags...)
	return out
}

// UnmarshalYAML decodes a tool, treating a missing is_free as true.
func (t *Tool) UnmarshalYAML(node *yaml.Node) error {
	type plain Tool
	p := plain{IsFree: true}
	if err := node.Decode(&p); err != nil {
		return err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	*t = Tool(p)
	return nil
}

// CategoryInfo is one entry of the category catalog.
type CategoryInfo struct {
	ID    Category `json:"id"`
	Name  string   `json:"name"`
	Emoji string   `json:"emoji"`
}

// Categories returns the fixed category catalog in display order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{ID: CategoryEditor, Name: "编辑器 / IDE", Emoji: "📝"},
		{ID: CategoryCLI, Name: "命令行工具", Emoji: "⌨️"},
		{ID: CategoryWebApp, Name: "Web 应用", Emoji: "🌐"},
		{ID: CategoryAgent, Name: "后台代理", Emoji: "🤖"},
		{ID: CategoryHelper, Name: "辅助工具", Emoji: "🛠️"},
	}
}
