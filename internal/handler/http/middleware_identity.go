package http

import (
	"context"
	"net/http"
)

// withIdentity resolves the session's stored identifier against the identity
// store exactly once per request. A failed lookup simply leaves the request
// unauthenticated; gates decide later whether that matters.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := h.sessions.IdentityID(r)
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, ok := h.services.AuthService.Deserialize(r.Context(), id)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), identityCtxKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
