package store

import (
	"context"
	"sort"
	"sync"

	"webclass/internal/logger"
	"webclass/models"
)

// userCollection is the in-memory implementation of [UserCollection].
//
// Handlers run on concurrent goroutines, so every operation takes the mutex;
// a mutation is therefore atomic with respect to other requests and no two
// creates can race on the sequence counter.
type userCollection struct {
	logger *logger.Logger

	mu     sync.RWMutex
	users  map[int]models.User
	nextID int
}

// NewUserCollection constructs a [UserCollection] pre-seeded with the
// permanent sentinel record at ID 0.
func NewUserCollection(logger *logger.Logger) UserCollection {
	logger.Debug().Msg("creating user collection")
	return &userCollection{
		logger: logger,
		users: map[int]models.User{
			0: {ID: 0, Name: "system"},
		},
		nextID: 1,
	}
}

// List returns all records ordered by ID, excluding the sentinel.
func (c *userCollection) List(_ context.Context) []models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.User, 0, len(c.users)-1)
	for id, u := range c.users {
		if id == 0 {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Create validates the record and stores it under a freshly allocated
// sequential ID. Validation failures leave the collection untouched.
func (c *userCollection) Create(_ context.Context, user models.User) (models.User, error) {
	if !user.Valid() {
		return models.User{}, ErrInvalidRecord
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	user.ID = c.nextID
	c.nextID++
	c.users[user.ID] = user

	return user, nil
}

func (c *userCollection) Get(_ context.Context, id int) (models.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	user, ok := c.users[id]
	if !ok {
		return models.User{}, ErrRecordNotFound
	}

	return user, nil
}

// Replace overwrites the record under id wholesale, creating it when absent.
// The sequence counter is advanced past id so future creates stay monotonic.
func (c *userCollection) Replace(_ context.Context, id int, user models.User) (models.User, error) {
	if !user.Valid() {
		return models.User{}, ErrInvalidRecord
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	user.ID = id
	c.users[id] = user
	if id >= c.nextID {
		c.nextID = id + 1
	}

	return user, nil
}

// Delete removes the record under id. Deleting the sentinel or a missing
// record is a no-op.
func (c *userCollection) Delete(_ context.Context, id int) error {
	if id == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.users, id)

	return nil
}
