// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and response utilities serving two
// client populations at once: browsers receive server-rendered HTML, API and
// CLI clients receive plain text. The choice between the two is made exactly
// once per request by the negotiation middleware and threaded through the
// request context.
package http

import (
	"context"
	"net/http"

	"webclass/internal/negotiate"
)

// withNegotiation computes the response mode from the Accept and User-Agent
// headers and stores it in the request context. Every downstream handler and
// gate branches on this single value.
func (h *Handler) withNegotiation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mode := negotiate.FromRequest(r)
		ctx := context.WithValue(r.Context(), modeCtxKey, mode)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
