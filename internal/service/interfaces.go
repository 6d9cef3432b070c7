package service

import (
	"context"

	"webclass/models"
)

// AuthService manages the credential lifecycle and session identity
// round-trips.
//
// Sessions store only the opaque identifier produced by Serialize; the full
// identity is reconstructed on each request via Deserialize.
type AuthService interface {
	// Register creates a new credential for the given email and raw
	// password. The email is normalized before the uniqueness check and
	// the password is stored as a salted one-way hash.
	Register(ctx context.Context, email, rawPassword, role string) (models.Identity, error)

	// Authenticate verifies the raw password against the stored hash.
	// Unknown emails and wrong passwords both yield the same
	// [ErrInvalidCredentials]; callers must not distinguish the two.
	Authenticate(ctx context.Context, email, rawPassword string) (models.Identity, error)

	// Serialize reduces an identity to the opaque identifier stored in
	// the session.
	Serialize(identity models.Identity) string

	// Deserialize resolves a stored identifier back to an identity.
	// A failed lookup reports false and is treated as unauthenticated.
	Deserialize(ctx context.Context, id string) (models.Identity, bool)
}
