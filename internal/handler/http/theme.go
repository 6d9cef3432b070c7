package http

import (
	"net/http"

	"webclass/internal/logger"
	"webclass/internal/negotiate"
	"webclass/internal/session"
	"webclass/models"
)

// saveTheme persists the submitted theme preference in a long-lived cookie.
// Browsers return to where they came from; API clients get an
// acknowledgement line.
func (h *Handler) saveTheme(w http.ResponseWriter, r *http.Request) {
	theme := r.PostFormValue("theme")
	if !models.ValidTheme(theme) {
		logger.FromRequest(r).Debug().Str("theme", theme).Msg("rejected unknown theme value")
		writeText(w, http.StatusBadRequest, textBadRequest)
		return
	}

	session.SetTheme(w, theme)

	if modeFrom(r.Context()) != negotiate.HTML {
		writeText(w, http.StatusOK, textThemeSaved)
		return
	}

	back := r.Referer()
	if back == "" {
		back = "/"
	}
	redirect(w, r, back)
}
