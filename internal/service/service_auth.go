// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"webclass/internal/logger"
	"webclass/internal/store"
	"webclass/models"
)

// authService is the concrete implementation of [AuthService]. It handles
// credential registration, password verification with bcrypt, and the
// session identity round-trip backed by an [store.IdentityRepository].
type authService struct {
	// identities is the data-access layer used to create and look up
	// credentials.
	identities store.IdentityRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given identity
// repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(identities store.IdentityRepository, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		identities: identities,
		logger:     logger,
	}
}

// Register validates the input, hashes the password, and stores a new
// credential under a freshly minted identifier.
//
// Error handling:
//   - missing email or password → [ErrInvalidDataProvided].
//   - duplicate normalized email → [store.ErrEmailTaken] (passed through).
func (s *authService) Register(ctx context.Context, email, rawPassword, role string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	email = models.NormalizeEmail(email)
	if email == "" || rawPassword == "" {
		return models.Identity{}, ErrInvalidDataProvided
	}

	if role == "" {
		role = models.RoleMember
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error hashing password: %w", err)
	}

	cred, err := s.identities.Create(ctx, models.Credential{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return models.Identity{}, err
	}

	log.Debug().Str("email", cred.Email).Msg("credential registered")

	return cred.Identity(), nil
}

// Authenticate looks the credential up by normalized email and compares the
// bcrypt hash. Both failure paths collapse into [ErrInvalidCredentials].
func (s *authService) Authenticate(ctx context.Context, email, rawPassword string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	cred, err := s.identities.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			return models.Identity{}, ErrInvalidCredentials
		}
		return models.Identity{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(rawPassword)); err != nil {
		return models.Identity{}, ErrInvalidCredentials
	}

	log.Debug().Str("email", cred.Email).Msg("credential authenticated")

	return cred.Identity(), nil
}

// Serialize returns the opaque identifier the session stores. No secret
// material ever reaches the cookie.
func (s *authService) Serialize(identity models.Identity) string {
	return identity.ID
}

// Deserialize resolves the stored identifier against the identity registry.
// Any lookup failure means the request proceeds unauthenticated.
func (s *authService) Deserialize(ctx context.Context, id string) (models.Identity, bool) {
	if id == "" {
		return models.Identity{}, false
	}

	cred, err := s.identities.FindByID(ctx, id)
	if err != nil {
		return models.Identity{}, false
	}

	return cred.Identity(), true
}
