// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"sync"

	"webclass/internal/logger"
	"webclass/models"
)

// identityRepository is the in-memory implementation of
// [IdentityRepository]. Credentials are keyed by normalized email; a second
// index by ID serves session deserialization.
type identityRepository struct {
	logger *logger.Logger

	mu      sync.RWMutex
	byEmail map[string]models.Credential
	byID    map[string]models.Credential
}

// NewIdentityRepository constructs an empty [IdentityRepository].
func NewIdentityRepository(logger *logger.Logger) IdentityRepository {
	logger.Debug().Msg("creating identity repository")
	return &identityRepository{
		logger:  logger,
		byEmail: make(map[string]models.Credential),
		byID:    make(map[string]models.Credential),
	}
}

// Create stores a new credential record. The email key is normalized before
// the uniqueness check, so "Admin@Example.com" collides with
// "admin@example.com".
func (r *identityRepository) Create(_ context.Context, cred models.Credential) (models.Credential, error) {
	cred.Email = models.NormalizeEmail(cred.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[cred.Email]; exists {
		return models.Credential{}, ErrEmailTaken
	}

	r.byEmail[cred.Email] = cred
	r.byID[cred.ID] = cred

	return cred, nil
}

func (r *identityRepository) FindByEmail(_ context.Context, email string) (models.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.byEmail[models.NormalizeEmail(email)]
	if !ok {
		return models.Credential{}, ErrCredentialNotFound
	}

	return cred, nil
}

func (r *identityRepository) FindByID(_ context.Context, id string) (models.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.byID[id]
	if !ok {
		return models.Credential{}, ErrCredentialNotFound
	}

	return cred, nil
}
