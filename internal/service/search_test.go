package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Strob0t/codeguide/internal/adapter/ristretto"
	"github.com/Strob0t/codeguide/internal/domain/search"
)

func TestSearchBlankQuery(t *testing.T) {
	svc, _ := newLoadedService(t)
	s := NewSearchService(svc, nil, 0, nil)

	for _, q := range []string{"", "   ", "\t"} {
		resp := s.Search(context.Background(), q)
		if resp.Total != 0 || resp.Results == nil || len(resp.Results) != 0 {
			t.Errorf("query %q: expected empty non-nil results, got %+v", q, resp)
		}
		if resp.Query != q {
			t.Errorf("query %q: expected query echoed, got %q", q, resp.Query)
		}
	}
}

func TestSearchAIFindsToolWithSnippet(t *testing.T) {
	svc, _ := newLoadedService(t)
	s := NewSearchService(svc, nil, 0, nil)

	resp := s.Search(context.Background(), "AI")

	var found *search.Result
	for i := range resp.Results {
		if resp.Results[i].Type == search.KindTool && resp.Results[i].ID == "cursor" {
			found = &resp.Results[i]
		}
	}
	if found == nil {
		t.Fatalf("expected cursor in results, got %+v", resp.Results)
	}
	if found.Snippet == "" || !strings.Contains(found.Snippet, "AI") {
		t.Errorf("expected snippet containing AI, got %q", found.Snippet)
	}
	if found.URL != "https://cursor.com" {
		t.Errorf("expected tool URL, got %q", found.URL)
	}
	if resp.Total != len(resp.Results) {
		t.Errorf("total %d does not match %d results", resp.Total, len(resp.Results))
	}
}

func TestSearchGroupOrder(t *testing.T) {
	svc, _ := newLoadedService(t)
	s := NewSearchService(svc, nil, 0, nil)

	resp := s.Search(context.Background(), "ai")

	rank := map[search.Kind]int{search.KindGuide: 0, search.KindTool: 1, search.KindResource: 2}
	for i := 1; i < len(resp.Results); i++ {
		if rank[resp.Results[i-1].Type] > rank[resp.Results[i].Type] {
			t.Fatalf("results not grouped guide, tool, resource: %+v", resp.Results)
		}
	}

	// Guide matches keep file order, not Order.
	var guideIDs []string
	for _, r := range resp.Results {
		if r.Type == search.KindGuide {
			guideIDs = append(guideIDs, r.ID)
		}
		if r.Type == search.KindGuide && r.URL != "" {
			t.Errorf("guide result must not carry a URL: %+v", r)
		}
	}
	want := []string{"tools", "introduction"}
	if len(guideIDs) != len(want) || guideIDs[0] != want[0] || guideIDs[1] != want[1] {
		t.Errorf("expected guide matches %v, got %v", want, guideIDs)
	}
}

func TestSearchFieldSets(t *testing.T) {
	svc, _ := newLoadedService(t)
	s := NewSearchService(svc, nil, 0, nil)

	// "## Tools" is only in guide content; tool tags must not be searched.
	resp := s.Search(context.Background(), "## tools")
	if resp.Total != 1 || resp.Results[0].ID != "tools" {
		t.Errorf("expected only the tools section via content, got %+v", resp.Results)
	}

	if resp := s.Search(context.Background(), "ide"); containsID(resp, "cursor") {
		t.Error("tags must not be searched")
	}

	if resp := s.Search(context.Background(), "DAIR"); resp.Total != 0 {
		t.Errorf("resource author must not be searched, got %+v", resp.Results)
	}
}

func TestSearchCachedAndInvalidatedOnReload(t *testing.T) {
	svc, dir := newLoadedService(t)
	c, err := ristretto.New(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Close)
	s := NewSearchService(svc, c, time.Minute, nil)
	ctx := context.Background()

	first := s.Search(ctx, "editor")
	if !containsID(first, "cursor") {
		t.Fatalf("expected cursor for editor, got %+v", first.Results)
	}
	again := s.Search(ctx, "editor")
	if again.Total != first.Total {
		t.Errorf("cached response differs: %d vs %d", again.Total, first.Total)
	}

	writeData(t, dir, "tools.yaml", `
- id: zed
  name: Zed
  description: A fast editor.
  url: https://zed.dev
  category: editor
`)
	if _, err := svc.Reload(ctx, "test"); err != nil {
		t.Fatal(err)
	}

	after := s.Search(ctx, "editor")
	if containsID(after, "cursor") {
		t.Error("stale cached result returned after reload")
	}
	if !containsID(after, "zed") {
		t.Errorf("expected zed after reload, got %+v", after.Results)
	}
}

func containsID(resp search.Response, id string) bool {
	for _, r := range resp.Results {
		if r.ID == id {
			return true
		}
	}
	return false
}
