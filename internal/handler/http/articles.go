// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"webclass/internal/logger"
	"webclass/internal/negotiate"
	"webclass/internal/render"
	"webclass/internal/store"
	"webclass/models"
)

// The article routes serve two independent datasets. HTML requests read and
// write the document store; plain-text requests read and write the in-memory
// collection. Neither surface sees the other's data.

// listArticles serves the article index. An unreachable document store
// degrades to an empty listing with an informational flash instead of an
// error page.
func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	if modeFrom(r.Context()) != negotiate.HTML {
		writeText(w, http.StatusOK, textArticleList)
		return
	}

	docs, err := h.storages.ArticleDocs.ListRecent(r.Context())
	if err != nil {
		if !errors.Is(err, store.ErrStoreUnavailable) {
			logger.FromRequest(r).Err(err).Msg("error listing article documents")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		logger.FromRequest(r).Warn().Msg("document store unavailable, serving empty article listing")
		h.flash(w, r, models.Flash{Type: models.FlashInfo, Text: "Article storage is unavailable right now"})
		docs = nil
	}

	flashes := h.sessions.PopFlashes(w, r)
	h.renderArticlePage(w, r, http.StatusOK, render.ArticleIndex, "Articles", docs, flashes)
}

// createArticle writes to whichever dataset matches the negotiated mode:
// a document with title and body for HTML, an in-memory record for text.
func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	if modeFrom(r.Context()) == negotiate.HTML {
		h.createArticleDocument(w, r)
		return
	}

	var article models.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("malformed article payload")
		writeText(w, http.StatusBadRequest, textBadRequest)
		return
	}

	created, err := h.storages.Articles.Create(r.Context(), article)
	if err != nil {
		if errors.Is(err, store.ErrInvalidRecord) {
			writeText(w, http.StatusBadRequest, textBadRequest)
			return
		}
		logger.FromRequest(r).Err(err).Msg("error creating article")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.FromRequest(r).Info().Int("id", created.ID).Msg("article created")
	writeText(w, http.StatusCreated, textArticleMade)
}

func (h *Handler) createArticleDocument(w http.ResponseWriter, r *http.Request) {
	title := r.PostFormValue("title")
	body := r.PostFormValue("body")
	if title == "" {
		writeText(w, http.StatusBadRequest, textBadRequest)
		return
	}

	doc, err := h.storages.ArticleDocs.Insert(r.Context(), title, body)
	if err != nil {
		if errors.Is(err, store.ErrStoreUnavailable) {
			logger.FromRequest(r).Warn().Msg("document store unavailable, article not saved")
			h.flash(w, r, models.Flash{Type: models.FlashError, Text: "Article storage is unavailable, nothing was saved"})
			redirect(w, r, "/articles")
			return
		}
		logger.FromRequest(r).Err(err).Msg("error inserting article document")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.FromRequest(r).Info().Str("id", doc.ID.Hex()).Msg("article document inserted")
	h.flash(w, r, models.Flash{Type: models.FlashSuccess, Text: "Article saved"})
	redirect(w, r, "/articles")
}

// showArticle serves a single article: a document for browsers, the fixed
// detail line for API clients.
func (h *Handler) showArticle(w http.ResponseWriter, r *http.Request) {
	if modeFrom(r.Context()) != negotiate.HTML {
		writeText(w, http.StatusOK, textArticleDetail)
		return
	}

	doc, err := h.storages.ArticleDocs.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDocumentNotFound):
			flashes := h.sessions.PopFlashes(w, r)
			h.renderArticlePage(w, r, http.StatusNotFound, render.ArticleNotFound, "Not found", nil, flashes)
		case errors.Is(err, store.ErrStoreUnavailable):
			logger.FromRequest(r).Warn().Msg("document store unavailable, article not shown")
			h.flash(w, r, models.Flash{Type: models.FlashError, Text: "Article storage is unavailable right now"})
			redirect(w, r, "/articles")
		default:
			logger.FromRequest(r).Err(err).Msg("error fetching article document")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	flashes := h.sessions.PopFlashes(w, r)
	h.renderArticlePage(w, r, http.StatusOK, render.ArticleShow, doc.Title, doc, flashes)
}

// replaceArticle overwrites the in-memory record at the given identifier,
// creating it when absent.
func (h *Handler) replaceArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w, r, "No such article")
		return
	}

	var article models.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("malformed article payload")
		writeText(w, http.StatusBadRequest, textBadRequest)
		return
	}

	if _, err := h.storages.Articles.Replace(r.Context(), id, article); err != nil {
		if errors.Is(err, store.ErrInvalidRecord) {
			writeText(w, http.StatusBadRequest, textBadRequest)
			return
		}
		logger.FromRequest(r).Err(err).Msg("error replacing article")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeText(w, http.StatusOK, textArticleUpdate)
}

// deleteArticle removes the in-memory record, with the usual sentinel no-op.
func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w, r, "No such article")
		return
	}

	if err := h.storages.Articles.Delete(r.Context(), id); err != nil {
		logger.FromRequest(r).Err(err).Msg("error deleting article")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.deleteResponse(w, textArticleDelete)
}
