// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"webclass/internal/logger"
	"webclass/internal/negotiate"
	"webclass/models"
)

// The three authentication gates. Which negotiated mode a gate protects
// depends on the route: HTML-only gates shield browser views, API-only gates
// shield text-mode mutations, and the universal gate shields both. A failed
// check is never fatal: browsers get a flash and a redirect home, API
// clients get a 401.

// requireHTMLAuth enforces authentication for HTML-mode requests only.
// Plain-text requests always pass.
func (h *Handler) requireHTMLAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if modeFrom(r.Context()) != negotiate.HTML {
			next.ServeHTTP(w, r)
			return
		}

		if _, ok := identityFrom(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		h.denyHTML(w, r)
	})
}

// requireAPIAuth is the mirror image: plain-text requests must carry a valid
// session, HTML requests always pass.
func (h *Handler) requireAPIAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if modeFrom(r.Context()) == negotiate.HTML {
			next.ServeHTTP(w, r)
			return
		}

		if _, ok := identityFrom(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		h.denyText(w, r)
	})
}

// requireAuth enforces authentication regardless of mode.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := identityFrom(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		if modeFrom(r.Context()) == negotiate.HTML {
			h.denyHTML(w, r)
			return
		}
		h.denyText(w, r)
	})
}

func (h *Handler) denyHTML(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("unauthenticated browser request, redirecting home")

	h.flash(w, r, models.Flash{Type: models.FlashError, Text: "Please log in first"})
	redirect(w, r, "/")
}

func (h *Handler) denyText(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("unauthenticated api request")
	writeText(w, http.StatusUnauthorized, textUnauthorized)
}
