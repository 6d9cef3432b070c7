package http

import (
	"context"

	"webclass/internal/negotiate"
	"webclass/models"
)

// contextKey is a private key type preventing collisions with context values
// set by other packages.
type contextKey string

const (
	// modeCtxKey holds the negotiated response mode for the request.
	modeCtxKey contextKey = "negotiated-mode"

	// identityCtxKey holds the resolved session identity, when present.
	identityCtxKey contextKey = "identity"
)

// modeFrom returns the negotiated mode stored by the negotiation middleware.
// Requests that bypass the middleware (direct handler tests) default to
// plain text.
func modeFrom(ctx context.Context) negotiate.Mode {
	if mode, ok := ctx.Value(modeCtxKey).(negotiate.Mode); ok {
		return mode
	}
	return negotiate.PlainText
}

// identityFrom returns the authenticated identity resolved by the identity
// middleware, and whether one is present.
func identityFrom(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey).(models.Identity)
	return identity, ok
}
