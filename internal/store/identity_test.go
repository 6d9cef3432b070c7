package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webclass/internal/logger"
	"webclass/models"
)

func TestIdentityRepository_CreateAndFind(t *testing.T) {
	repo := NewIdentityRepository(logger.Nop())
	ctx := context.Background()

	created, err := repo.Create(ctx, models.Credential{
		ID:           "cred-1",
		Email:        "  Admin@Example.com ",
		PasswordHash: "hash",
		Role:         models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", created.Email, "email key must be normalized")

	byEmail, err := repo.FindByEmail(ctx, "ADMIN@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "cred-1", byEmail.ID)

	byID, err := repo.FindByID(ctx, "cred-1")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", byID.Email)
}

func TestIdentityRepository_DuplicateEmail(t *testing.T) {
	repo := NewIdentityRepository(logger.Nop())
	ctx := context.Background()

	_, err := repo.Create(ctx, models.Credential{ID: "a", Email: "user@example.com"})
	require.NoError(t, err)

	// duplicate differs only by case
	_, err = repo.Create(ctx, models.Credential{ID: "b", Email: "User@Example.com"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestIdentityRepository_NotFound(t *testing.T) {
	repo := NewIdentityRepository(logger.Nop())
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, ErrCredentialNotFound)

	_, err = repo.FindByID(ctx, "missing")
	require.ErrorIs(t, err, ErrCredentialNotFound)
}
