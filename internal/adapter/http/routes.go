package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes registers all API routes on the given chi router under prefix
// (for example "/api"; "" mounts at the root).
func MountRoutes(r chi.Router, h *Handlers, prefix string) {
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	routes := func(r chi.Router) {
		r.Get("/health", h.Health)

		// Guide
		r.Get("/guide", h.ListGuide)
		r.Get("/guide/{id}", h.GetGuide)

		// Tools
		r.Get("/tools", h.ListTools)
		r.Get("/tools/categories", h.ListToolCategories)
		r.Get("/tools/{id}", h.GetTool)

		// Resources
		r.Get("/resources", h.ListResources)
		r.Get("/resources/types", h.ListResourceTypes)
		r.Get("/resources/{id}", h.GetResource)

		// Search
		r.Get("/search", h.Search)
	}

	if prefix == "" || prefix == "/" {
		r.Group(routes)
		return
	}
	r.Route(prefix, routes)
}
