package store

import (
	"context"

	"webclass/models"
)

// IdentityRepository is the registry of authentication credentials.
// Records are created at registration time and never updated or deleted.
// Email keys are case-insensitive and unique.
type IdentityRepository interface {
	Create(ctx context.Context, cred models.Credential) (models.Credential, error)
	FindByEmail(ctx context.Context, email string) (models.Credential, error)
	FindByID(ctx context.Context, id string) (models.Credential, error)
}

// UserCollection is the in-memory user store backing the plain-text API
// surface and the HTML user pages. The record with ID 0 is a permanent
// sentinel excluded from List and protected from Delete.
type UserCollection interface {
	List(ctx context.Context) []models.User
	Create(ctx context.Context, user models.User) (models.User, error)
	Get(ctx context.Context, id int) (models.User, error)
	Replace(ctx context.Context, id int, user models.User) (models.User, error)
	Delete(ctx context.Context, id int) error
}

// ArticleCollection is the in-memory article store backing the plain-text
// API surface. Fully independent from [ArticleDocuments]: writes on one
// surface are invisible to the other. Same sentinel-ID rules as
// [UserCollection].
type ArticleCollection interface {
	List(ctx context.Context) []models.Article
	Create(ctx context.Context, article models.Article) (models.Article, error)
	Get(ctx context.Context, id int) (models.Article, error)
	Replace(ctx context.Context, id int, article models.Article) (models.Article, error)
	Delete(ctx context.Context, id int) error
}

// ArticleDocuments is the document-store article repository backing the HTML
// surface. All operations may fail with [ErrStoreUnavailable], which callers
// treat as "no data available" rather than a fatal condition.
type ArticleDocuments interface {
	// ListRecent returns stored articles ordered by creation time,
	// newest first.
	ListRecent(ctx context.Context) ([]models.ArticleDocument, error)

	// Insert stores a new article with a server-assigned creation
	// timestamp and returns it with the store-generated identifier set.
	Insert(ctx context.Context, title, body string) (models.ArticleDocument, error)

	// FindByID looks an article up by its raw identifier string.
	// Malformed identifiers resolve to [ErrDocumentNotFound], never to an
	// error of their own.
	FindByID(ctx context.Context, rawID string) (models.ArticleDocument, error)
}
