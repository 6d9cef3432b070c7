package http

import (
	"errors"
	"net/http"
	"strings"

	"webclass/internal/logger"
	"webclass/internal/negotiate"
	"webclass/internal/render"
	"webclass/internal/store"
)

// mongoDemo serves the document-store showcase page: the stored article
// titles straight from the external collection, or a fallback line when the
// store has nothing to offer.
func (h *Handler) mongoDemo(w http.ResponseWriter, r *http.Request) {
	docs, err := h.storages.ArticleDocs.ListRecent(r.Context())
	if err != nil {
		if !errors.Is(err, store.ErrStoreUnavailable) {
			logger.FromRequest(r).Err(err).Msg("error listing article documents")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		logger.FromRequest(r).Warn().Msg("document store unavailable, serving empty demo listing")
		docs = nil
	}

	if modeFrom(r.Context()) == negotiate.HTML {
		flashes := h.sessions.PopFlashes(w, r)
		h.renderArticlePage(w, r, http.StatusOK, render.MongoDemo, "Stored articles", docs, flashes)
		return
	}

	if len(docs) == 0 {
		writeText(w, http.StatusOK, "No articles available")
		return
	}

	titles := make([]string, 0, len(docs))
	for _, doc := range docs {
		titles = append(titles, doc.Title)
	}
	writeText(w, http.StatusOK, strings.Join(titles, "\n"))
}
