package http

import (
	"net/http"
)

// withRecovery is the outermost middleware. It converts panics escaping a
// handler into a logged 500 with a generic body, never exposing internals to
// the client. It runs before the request-logger middleware, so it logs
// through the handler's own logger rather than the request context.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				h.logger.Error().
					Any("panic", rec).
					Str("uri", r.RequestURI).
					Msg("recovered from panic in handler")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
