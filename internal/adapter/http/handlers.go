package http

import (
	"net/http"
	"time"

	"github.com/Strob0t/codeguide/internal/adapter/markdown"
	"github.com/Strob0t/codeguide/internal/config"
	"github.com/Strob0t/codeguide/internal/service"
)

// Handlers holds the services the HTTP endpoints read from.
type Handlers struct {
	App      config.App
	Content  *service.ContentService
	Searcher *service.SearchService
	Markdown *markdown.Renderer // optional; nil disables ?render=html
}

type healthData struct {
	Name       string         `json:"name"`
	Version    string         `json:"version"`
	Counts     map[string]int `json:"counts"`
	Generation uint64         `json:"generation"`
	LoadedAt   *time.Time     `json:"loaded_at,omitempty"`
}

// Health handles GET /health
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	st := h.Content.Stats()
	data := healthData{
		Name:       h.App.Name,
		Version:    h.App.Version,
		Counts:     st.Counts,
		Generation: st.Generation,
	}
	if !st.LoadedAt.IsZero() {
		data.LoadedAt = &st.LoadedAt
	}
	writeOK(w, "service is running", data)
}
