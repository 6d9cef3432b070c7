package http

import (
	"net/http"

	"webclass/internal/negotiate"
	"webclass/internal/render"
)

// protected serves the members-only page. The auth gate guarantees an
// identity is present by the time this runs.
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	identity, _ := identityFrom(r.Context())

	if modeFrom(r.Context()) != negotiate.HTML {
		writeText(w, http.StatusOK, "Protected content for "+identity.Email)
		return
	}

	flashes := h.sessions.PopFlashes(w, r)
	h.renderPage(w, r, http.StatusOK, render.PageProtected, "Protected", identity, flashes)
}
