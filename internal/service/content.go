package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	cfotel "github.com/Strob0t/codeguide/internal/adapter/otel"
	"github.com/Strob0t/codeguide/internal/domain"
	"github.com/Strob0t/codeguide/internal/domain/guide"
	"github.com/Strob0t/codeguide/internal/domain/resource"
	"github.com/Strob0t/codeguide/internal/domain/tool"
	"github.com/Strob0t/codeguide/internal/port/contentsource"
)

// Stats describes the currently loaded content.
type Stats struct {
	Counts     map[string]int `json:"counts"`
	Generation uint64         `json:"generation"`
	LoadedAt   time.Time      `json:"loaded_at"`
	Issues     []LoadIssue    `json:"issues,omitempty"`
}

// LoadIssue records a collection that was present but could not be read.
type LoadIssue struct {
	Collection string `json:"collection"`
	Location   string `json:"location"`
	Error      string `json:"error"`
}

// snapshot is one immutable generation of all three collections.
type snapshot struct {
	guide     []guide.Section // load order
	sorted    []guide.Section // by Order, stable
	tools     []tool.Tool
	resources []resource.Resource
	stats     Stats
}

// ContentService holds the guide, tool and resource collections in memory.
// Reads are lock-free; Reload swaps in a fully built snapshot.
type ContentService struct {
	src     contentsource.Source
	metrics *cfotel.Metrics
	now     func() time.Time

	current atomic.Pointer[snapshot]

	mu    sync.Mutex // serializes Reload and guards hooks
	hooks []func(ctx context.Context, st Stats)
}

// NewContentService creates a ContentService with empty collections.
// Call Reload to populate it. metrics may be nil.
func NewContentService(src contentsource.Source, metrics *cfotel.Metrics) *ContentService {
	s := &ContentService{src: src, metrics: metrics, now: time.Now}
	s.current.Store(&snapshot{stats: Stats{Counts: counts(nil, nil, nil)}})
	return s
}

// OnReload registers fn to run after every successful reload.
func (s *ContentService) OnReload(fn func(ctx context.Context, st Stats)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Reload re-reads all three collections and replaces them together.
// Missing collections load as empty; present but unreadable ones load as
// empty and are reported in Stats.Issues. Only context cancellation fails the
// reload, in which case the previous content is kept.
func (s *ContentService) Reload(ctx context.Context, trigger string) (Stats, error) {
	ctx, span := cfotel.StartReloadSpan(ctx, trigger)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var issues []LoadIssue
	sections, issue, err := loadCollection[guide.Section](ctx, s, contentsource.Guide)
	if err != nil {
		return Stats{}, err
	}
	issues = appendIssue(issues, issue)

	tools, issue, err := loadCollection[tool.Tool](ctx, s, contentsource.Tools)
	if err != nil {
		return Stats{}, err
	}
	issues = appendIssue(issues, issue)

	resources, issue, err := loadCollection[resource.Resource](ctx, s, contentsource.Resources)
	if err != nil {
		return Stats{}, err
	}
	issues = appendIssue(issues, issue)

	prev := s.current.Load()
	next := &snapshot{
		guide:     sections,
		sorted:    sortSections(sections),
		tools:     tools,
		resources: resources,
		stats: Stats{
			Counts:     counts(sections, tools, resources),
			Generation: prev.stats.Generation + 1,
			LoadedAt:   s.now(),
			Issues:     issues,
		},
	}
	s.current.Store(next)

	slog.Info("content loaded",
		"trigger", trigger,
		"generation", next.stats.Generation,
		"guide", len(sections),
		"tools", len(tools),
		"resources", len(resources),
		"issues", len(issues),
	)
	s.metrics.RecordReload(ctx, next.stats.Counts)

	for _, fn := range s.hooks {
		fn(ctx, next.stats)
	}
	return next.stats, nil
}

// loadCollection decodes one collection. A missing source is silently empty;
// any other failure except cancellation empties the collection and is
// returned as an issue.
func loadCollection[T any](ctx context.Context, s *ContentService, name string) ([]T, *LoadIssue, error) {
	var out []T
	err := s.src.Load(ctx, name, &out)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, nil, fmt.Errorf("load %s: %w", name, err)
	case errors.Is(err, contentsource.ErrMissing):
		slog.Debug("content collection missing", "collection", name, "location", s.src.Location(name))
	default:
		slog.Warn("content collection unreadable, serving empty",
			"collection", name, "location", s.src.Location(name), "error", err)
		// A failed decode may have filled part of out.
		return []T{}, &LoadIssue{Collection: name, Location: s.src.Location(name), Error: err.Error()}, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil, nil
}

func appendIssue(issues []LoadIssue, issue *LoadIssue) []LoadIssue {
	if issue == nil {
		return issues
	}
	return append(issues, *issue)
}

// Stats returns the counts and generation of the loaded content.
func (s *ContentService) Stats() Stats {
	return s.current.Load().stats
}

// ListGuide returns all guide sections ordered by Order ascending. Sections
// with equal Order keep their file order.
func (s *ContentService) ListGuide() []guide.Section {
	return cloneEach(s.current.Load().sorted, (*guide.Section).Clone)
}

// GetGuide returns the section with the given ID.
func (s *ContentService) GetGuide(id string) (*guide.Section, error) {
	for _, sec := range s.current.Load().guide {
		if sec.ID == id {
			out := sec.Clone()
			return &out, nil
		}
	}
	return nil, fmt.Errorf("guide section %q: %w", id, domain.ErrNotFound)
}

// ListTools returns tools in file order, restricted to category when it is non-empty.
func (s *ContentService) ListTools(category tool.Category) []tool.Tool {
	all := s.current.Load().tools
	out := make([]tool.Tool, 0, len(all))
	for i := range all {
		if category == "" || all[i].Category == category {
			out = append(out, all[i].Clone())
		}
	}
	return out
}

// GetTool returns the tool with the given ID.
func (s *ContentService) GetTool(id string) (*tool.Tool, error) {
	for _, t := range s.current.Load().tools {
		if t.ID == id {
			out := t.Clone()
			return &out, nil
		}
	}
	return nil, fmt.Errorf("tool %q: %w", id, domain.ErrNotFound)
}

// ListResources returns resources in file order, restricted to typ when it is non-empty.
func (s *ContentService) ListResources(typ resource.Type) []resource.Resource {
	all := s.current.Load().resources
	out := make([]resource.Resource, 0, len(all))
	for i := range all {
		if typ == "" || all[i].Type == typ {
			out = append(out, all[i].Clone())
		}
	}
	return out
}

// GetResource returns the resource with the given ID.
func (s *ContentService) GetResource(id string) (*resource.Resource, error) {
	for _, r := range s.current.Load().resources {
		if r.ID == id {
			out := r.Clone()
			return &out, nil
		}
	}
	return nil, fmt.Errorf("resource %q: %w", id, domain.ErrNotFound)
}

// view returns the current snapshot for read-only use within the package.
func (s *ContentService) view() *snapshot {
	return s.current.Load()
}

func sortSections(in []guide.Section) []guide.Section {
	out := clone(in)
	slices.SortStableFunc(out, func(a, b guide.Section) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}

// clone copies the slice header and elements; it never returns nil so empty
// collections encode as [].
func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// cloneEach deep-copies every element with fn.
func cloneEach[T any](in []T, fn func(*T) T) []T {
	out := make([]T, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}

func counts(g []guide.Section, t []tool.Tool, r []resource.Resource) map[string]int {
	return map[string]int{
		contentsource.Guide:     len(g),
		contentsource.Tools:     len(t),
		contentsource.Resources: len(r),
	}
}
