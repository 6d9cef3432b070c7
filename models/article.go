package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article represents a record of the in-memory article collection backing the
// plain-text API surface. It follows the same sentinel-ID rule as [User]:
// the record with ID 0 is permanent and hidden from listings.
type Article struct {
	// ID is the sequential identifier allocated by the collection.
	ID int `json:"id"`

	// Title is the article headline. Required on create and replace.
	Title string `json:"title"`
}

// Valid reports whether the record satisfies the creation/update rules.
func (a Article) Valid() bool {
	return a.Title != ""
}

// ArticleDocument represents a document of the external article collection
// backing the HTML surface. The two article datasets are intentionally
// independent: writes on one surface are invisible to the other.
type ArticleDocument struct {
	// ID is the store-generated identifier.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Title is the article headline.
	Title string `bson:"title" json:"title"`

	// Body is the article text.
	Body string `bson:"body" json:"body"`

	// CreatedAt is the server-assigned creation timestamp. Listings are
	// ordered by this field, newest first.
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
