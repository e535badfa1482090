package http

import "net/http"

// ListGuide handles GET /guide
func (h *Handlers) ListGuide(w http.ResponseWriter, r *http.Request) {
	sections := h.Content.ListGuide()
	if wantsHTML(r) && h.Markdown != nil {
		for i := range sections {
			sections[i] = h.Markdown.RenderSection(&sections[i])
		}
	}
	writeOK(w, msgOK, sections)
}

// GetGuide handles GET /guide/{id}
func (h *Handlers) GetGuide(w http.ResponseWriter, r *http.Request) {
	sec, err := h.Content.GetGuide(urlParam(r, "id"))
	if err != nil {
		writeDomainError(w, err, "section not found")
		return
	}
	out := *sec
	if wantsHTML(r) && h.Markdown != nil {
		out = h.Markdown.RenderSection(sec)
	}
	writeOK(w, msgOK, out)
}
