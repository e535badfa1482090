// Package search provides the result model and text matching used by the
// content search endpoint.
package search

import (
	"strings"
	"unicode/utf8"
)

// Kind identifies which collection a result came from.
type Kind string

const (
	KindGuide    Kind = "guide"
	KindTool     Kind = "tool"
	KindResource Kind = "resource"
)

// Result is one matching record.
type Result struct {
	Type    Kind   `json:"type"`
	ID      string `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url,omitempty"`
}

// Response is the payload of a search request.
type Response struct {
	Results []Result `json:"results"`
	Query   string   `json:"query"`
	Total   int      `json:"total"`
}

// NewResponse builds a Response; results is never encoded as null.
func NewResponse(query string, results []Result) Response {
	if results == nil {
		results = []Result{}
	}
	return Response{Results: results, Query: query, Total: len(results)}
}

// IsBlank reports whether query has no searchable content.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Matches reports whether any field contains query, ignoring case.
func Matches(query string, fields ...string) bool {
	q := strings.ToLower(query)
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

const (
	maxPlainSnippet = 100
	contextBefore   = 30
	contextAfter    = 70
	ellipsis        = "..."
)

// Snippet extracts an excerpt of text around the first case-insensitive
// occurrence of query. Offsets count runes, not bytes.
//
// Without a match the text is cut to 100 runes. With a match the window
// spans 30 runes before it up to len(query)+70 runes after its start.
// An ellipsis marks each side where the window stops short of the text.
func Snippet(text, query string) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	lower := strings.ToLower(text)
	q := strings.ToLower(query)

	pos := strings.Index(lower, q)
	if pos < 0 {
		if len(runes) > maxPlainSnippet {
			return string(runes[:maxPlainSnippet]) + ellipsis
		}
		return text
	}

	// strings.ToLower maps rune by rune, so rune offsets in lower line up with runes.
	at := utf8.RuneCountInString(lower[:pos])
	start := max(0, at-contextBefore)
	end := min(len(runes), at+utf8.RuneCountInString(q)+contextAfter)

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis)
	}
	b.WriteString(string(runes[start:end]))
	if end < len(runes) {
		b.WriteString(ellipsis)
	}
	return b.String()
}
