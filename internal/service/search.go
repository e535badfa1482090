package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	cfotel "github.com/Strob0t/codeguide/internal/adapter/otel"
	"github.com/Strob0t/codeguide/internal/domain/search"
	"github.com/Strob0t/codeguide/internal/port/cache"
)

// SearchService runs substring search over the loaded content.
type SearchService struct {
	content *ContentService
	cache   cache.Cache // optional
	ttl     time.Duration
	metrics *cfotel.Metrics
}

// NewSearchService creates a SearchService. c may be nil to disable caching.
// Cached results are dropped whenever content is reloaded.
func NewSearchService(content *ContentService, c cache.Cache, ttl time.Duration, metrics *cfotel.Metrics) *SearchService {
	s := &SearchService{content: content, cache: c, ttl: ttl, metrics: metrics}
	if cl, ok := c.(cache.Clearer); ok {
		content.OnReload(func(context.Context, Stats) { cl.Clear() })
	}
	return s
}

// Search returns guide matches, then tool matches, then resource matches,
// each in file order. A blank query returns no results.
func (s *SearchService) Search(ctx context.Context, query string) search.Response {
	if search.IsBlank(query) {
		return search.NewResponse(query, nil)
	}

	ctx, span := cfotel.StartSearchSpan(ctx, query)
	defer span.End()

	snap := s.content.view()
	key := fmt.Sprintf("search:%d:%s", snap.stats.Generation, query)

	if resp, ok := s.cached(ctx, key); ok {
		s.metrics.RecordSearch(ctx, resp.Total, true)
		return resp
	}

	resp := search.NewResponse(query, scan(snap, query))
	s.store(ctx, key, resp)
	s.metrics.RecordSearch(ctx, resp.Total, false)
	return resp
}

func scan(snap *snapshot, query string) []search.Result {
	results := []search.Result{}

	for i := range snap.guide {
		sec := &snap.guide[i]
		if search.Matches(query, sec.Title, sec.Summary, sec.Content) {
			results = append(results, search.Result{
				Type:    search.KindGuide,
				ID:      sec.ID,
				Title:   sec.Title,
				Snippet: search.Snippet(sec.Summary, query),
			})
		}
	}

	for i := range snap.tools {
		t := &snap.tools[i]
		if search.Matches(query, t.Name, t.Description) {
			results = append(results, search.Result{
				Type:    search.KindTool,
				ID:      t.ID,
				Title:   t.Name,
				Snippet: search.Snippet(t.Description, query),
				URL:     t.URL,
			})
		}
	}

	for i := range snap.resources {
		r := &snap.resources[i]
		if search.Matches(query, r.Title, r.Description) {
			results = append(results, search.Result{
				Type:    search.KindResource,
				ID:      r.ID,
				Title:   r.Title,
				Snippet: search.Snippet(r.Description, query),
				URL:     r.URL,
			})
		}
	}

	return results
}

func (s *SearchService) cached(ctx context.Context, key string) (search.Response, bool) {
	if s.cache == nil {
		return search.Response{}, false
	}
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("search cache get failed", "error", err)
		return search.Response{}, false
	}
	if !ok {
		return search.Response{}, false
	}
	var resp search.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		slog.Warn("search cache entry corrupt", "error", err)
		return search.Response{}, false
	}
	return resp, true
}

func (s *SearchService) store(ctx context.Context, key string, resp search.Response) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Warn("search cache encode failed", "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		slog.Warn("search cache set failed", "error", err)
	}
}
