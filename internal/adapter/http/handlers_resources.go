package http

import (
	"net/http"

	"github.com/Strob0t/codeguide/internal/domain/resource"
)

// ListResources handles GET /resources?type=
func (h *Handlers) ListResources(w http.ResponseWriter, r *http.Request) {
	typ := resource.Type(r.URL.Query().Get("type"))
	writeOK(w, msgOK, h.Content.ListResources(typ))
}

// ListResourceTypes handles GET /resources/types
func (h *Handlers) ListResourceTypes(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, msgOK, resource.Types())
}

// GetResource handles GET /resources/{id}
func (h *Handlers) GetResource(w http.ResponseWriter, r *http.Request) {
	res, err := h.Content.GetResource(urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err, "resource not found")
		return
	}
	writeOK(w, msgOK, res)
}
