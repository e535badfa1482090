package http

import (
	"net/http"

	"github.com/Strob0t/codeguide/internal/domain/tool"
)

// ListTools handles GET /tools?category=
func (h *Handlers) ListTools(w http.ResponseWriter, r *http.Request) {
	category := tool.Category(r.URL.Query().Get("category"))
	writeOK(w, msgOK, h.Content.ListTools(category))
}

// ListToolCategories handles GET /tools/categories
func (h *Handlers) ListToolCategories(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, msgOK, tool.Categories())
}

// GetTool handles GET /tools/{id}
func (h *Handlers) GetTool(w http.ResponseWriter, r *http.Request) {
	t, err := h.Content.GetTool(urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err, "tool not found")
		return
	}
	writeOK(w, msgOK, t)
}
