// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webclass/internal/logger"
	"webclass/models"
)

func newTestUsers(t *testing.T) UserCollection {
	t.Helper()
	return NewUserCollection(logger.Nop())
}

func TestUserCollection_SentinelNeverListed(t *testing.T) {
	users := newTestUsers(t)

	list := users.List(context.Background())

	assert.Empty(t, list, "sentinel record must be excluded from listings")

	// the sentinel itself is still reachable by ID
	sentinel, err := users.Get(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, sentinel.ID)
}

func TestUserCollection_Create_SequentialIDs(t *testing.T) {
	users := newTestUsers(t)
	ctx := context.Background()

	var lastID int
	for i := 0; i < 5; i++ {
		created, err := users.Create(ctx, models.User{Name: "u"})
		require.NoError(t, err)
		assert.Greater(t, created.ID, lastID, "every allocated ID must exceed the previous one")
		lastID = created.ID
	}

	assert.Len(t, users.List(ctx), 5)
}

func TestUserCollection_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{
			name: "surname and first name",
			user: models.User{Surname: "Curie", FirstName: "Marie"},
		},
		{
			name: "name only",
			user: models.User{Name: "Marie Curie"},
		},
		{
			name:    "surname without first name",
			user:    models.User{Surname: "Curie"},
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "empty record",
			user:    models.User{},
			wantErr: ErrInvalidRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newTestUsers(t)

			_, err := users.Create(context.Background(), tt.user)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, users.List(context.Background()), "validation failure must not mutate the collection")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUserCollection_Replace_CreateIfAbsent(t *testing.T) {
	users := newTestUsers(t)
	ctx := context.Background()

	replaced, err := users.Replace(ctx, 42, models.User{Name: "late arrival"})
	require.NoError(t, err)
	assert.Equal(t, 42, replaced.ID)

	got, err := users.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "late arrival", got.Name)

	// sequence counter moved past the replaced ID
	created, err := users.Create(ctx, models.User{Name: "next"})
	require.NoError(t, err)
	assert.Greater(t, created.ID, 42)
}

func TestUserCollection_Replace_IsWholesale(t *testing.T) {
	users := newTestUsers(t)
	ctx := context.Background()

	created, err := users.Create(ctx, models.User{Surname: "Curie", FirstName: "Marie", Info: "physics"})
	require.NoError(t, err)

	_, err = users.Replace(ctx, created.ID, models.User{Name: "M. Curie"})
	require.NoError(t, err)

	got, err := users.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Info, "PUT replaces the record wholesale, no partial update")
	assert.Equal(t, "M. Curie", got.Name)
}

func TestUserCollection_Delete_SentinelIsNoOp(t *testing.T) {
	users := newTestUsers(t)
	ctx := context.Background()

	require.NoError(t, users.Delete(ctx, 0))

	_, err := users.Get(ctx, 0)
	require.NoError(t, err, "sentinel must survive deletion attempts")
}

func TestUserCollection_Delete_RemovesRecord(t *testing.T) {
	users := newTestUsers(t)
	ctx := context.Background()

	created, err := users.Create(ctx, models.User{Name: "ephemeral"})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, created.ID))

	_, err = users.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUserCollection_Get_Missing(t *testing.T) {
	users := newTestUsers(t)

	_, err := users.Get(context.Background(), 999)

	require.ErrorIs(t, err, ErrRecordNotFound)
}
