package http

import (
	"net/http"

	"webclass/internal/negotiate"
	"webclass/internal/render"
)

// home serves the landing page: a greeting with login/register forms for
// browsers, a fixed greeting line for everyone else.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	if modeFrom(r.Context()) != negotiate.HTML {
		writeText(w, http.StatusOK, textHome)
		return
	}

	flashes := h.sessions.PopFlashes(w, r)
	h.renderPage(w, r, http.StatusOK, render.PageHome, "Home", nil, flashes)
}
