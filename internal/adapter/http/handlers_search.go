package http

import "net/http"

// Search handles GET /search?q=
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	writeOK(w, msgSearchOK, h.Searcher.Search(r.Context(), r.URL.Query().Get("q")))
}
