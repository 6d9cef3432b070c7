package http

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"webclass/internal/logger"
	"webclass/internal/negotiate"
	"webclass/internal/render"
	"webclass/internal/session"
	"webclass/models"
)

// Fixed plain-text bodies of the API surface.
const (
	textHome          = "Hello World!"
	textRegisterUsage = "Send email and password to register"
	textRegistered    = "Registered"
	textLoggedIn      = "Logged in"
	textUnauthorized  = "Unauthorize"
	textUserList      = "User list"
	textUserCreated   = "User created"
	textUserUpdated   = "User updated"
	textUserDeleted   = "User deleted"
	textArticleList   = "Article list"
	textArticleDetail = "Article detail"
	textArticleMade   = "Article created"
	textArticleUpdate = "Article updated"
	textArticleDelete = "Article deleted"
	textThemeSaved    = "Theme saved"
	textNotFound      = "Not found"
	textBadRequest    = "invalid data provided"
)

// writeText writes a plain-text response with the given status.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", negotiate.PlainText.ContentType())
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// renderPage renders a core (html/template) page into a buffer first, so a
// template failure surfaces as a clean 500 instead of a half-written body.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, name, title string, data any, flashes []models.Flash) {
	h.writeRendered(w, r, status, func(buf *bytes.Buffer, pd render.PageData) error {
		return h.pages.Render(buf, name, pd)
	}, title, data, flashes)
}

// renderArticlePage renders a page of the pongo2 pipeline, same contract as
// renderPage.
func (h *Handler) renderArticlePage(w http.ResponseWriter, r *http.Request, status int, name, title string, data any, flashes []models.Flash) {
	h.writeRendered(w, r, status, func(buf *bytes.Buffer, pd render.PageData) error {
		return h.articles.Render(buf, name, pd)
	}, title, data, flashes)
}

func (h *Handler) writeRendered(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	renderFn func(*bytes.Buffer, render.PageData) error,
	title string,
	data any,
	flashes []models.Flash,
) {
	pd := render.PageData{
		Title:   title,
		Theme:   session.Theme(r),
		Flashes: flashes,
		Data:    data,
	}
	if identity, ok := identityFrom(r.Context()); ok {
		pd.Identity = &identity
	}

	var buf bytes.Buffer
	if err := renderFn(&buf, pd); err != nil {
		logger.FromRequest(r).Err(err).Str("page", title).Msg("template rendering failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", negotiate.HTML.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// redirect issues the See Other redirect used after every HTML-mode action.
func redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// deleteResponse answers a successful DELETE according to the process-wide
// response-mode flag: descriptive 200 body when verbose, bare 204 otherwise.
func (h *Handler) deleteResponse(w http.ResponseWriter, body string) {
	if h.cfg.VerboseDelete {
		writeText(w, http.StatusOK, body)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseID parses an in-memory collection identifier from its path segment.
// Only canonical non-negative decimal forms pass: sign prefixes like "+5" or
// "-0" are rejected, so callers answer not-found without touching any state.
func parseID(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

// notFound answers a missing resource in the request's negotiated mode.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, message string) {
	if modeFrom(r.Context()) == negotiate.HTML {
		h.renderPage(w, r, http.StatusNotFound, render.PageNotFound, "Not found", message, nil)
		return
	}
	writeText(w, http.StatusNotFound, textNotFound)
}
