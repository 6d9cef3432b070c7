// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webclass/internal/logger"
	"webclass/internal/store"
	"webclass/models"
)

func newTestAuth(t *testing.T) AuthService {
	t.Helper()
	identities := store.NewIdentityRepository(logger.Nop())
	return NewAuthService(identities, logger.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	auth := newTestAuth(t)

	identity, err := auth.Register(context.Background(), "Admin@Example.com", "secret", models.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", identity.Email)
	assert.Equal(t, models.RoleAdmin, identity.Role)
	assert.NotEmpty(t, identity.ID)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "missing email", password: "secret"},
		{name: "missing password", email: "user@example.com"},
		{name: "whitespace email", email: "   ", password: "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := newTestAuth(t)

			_, err := auth.Register(context.Background(), tt.email, tt.password, "")

			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "user@example.com", "secret", "")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "USER@example.com", "other", "")
	require.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestAuthService_Register_DefaultRole(t *testing.T) {
	auth := newTestAuth(t)

	identity, err := auth.Register(context.Background(), "user@example.com", "secret", "")

	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, identity.Role)
}

func TestAuthService_Authenticate(t *testing.T) {
	auth := newTestAuth(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, "admin@example.com", "secret", models.RoleAdmin)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		identity, err := auth.Authenticate(ctx, "admin@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, identity.ID)
	})

	t.Run("case insensitive email", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "Admin@Example.COM", "secret")
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "admin@example.com", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		_, err := auth.Authenticate(ctx, "ghost@example.com", "secret")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_SerializeDeserialize_RoundTrip(t *testing.T) {
	auth := newTestAuth(t)
	ctx := context.Background()

	registered, err := auth.Register(ctx, "admin@example.com", "secret", models.RoleAdmin)
	require.NoError(t, err)

	id := auth.Serialize(registered)
	require.NotEmpty(t, id)

	identity, ok := auth.Deserialize(ctx, id)
	require.True(t, ok)
	assert.Equal(t, registered, identity)
}

func TestAuthService_Deserialize_Failures(t *testing.T) {
	auth := newTestAuth(t)
	ctx := context.Background()

	_, ok := auth.Deserialize(ctx, "")
	assert.False(t, ok)

	_, ok = auth.Deserialize(ctx, "unknown-id")
	assert.False(t, ok)
}
