package models

import "strings"

// User represents a record of the in-memory user collection served by the
// plain-text API surface and the HTML user pages.
//
// The record with ID 0 is a permanent sentinel: it is seeded at startup,
// excluded from listings, and can never be deleted.
type User struct {
	// ID is the sequential identifier allocated by the collection.
	ID int `json:"id"`

	// Surname is the user's family name.
	Surname string `json:"surname"`

	// FirstName is the user's given name.
	FirstName string `json:"first_name"`

	// Email is an optional contact address. It is informational only and
	// plays no role in authentication (see Credential).
	Email string `json:"email"`

	// Info holds free-form notes about the user.
	Info string `json:"info"`

	// Name is the display text. When empty it is derived from Surname and
	// FirstName via [User.DisplayName].
	Name string `json:"name"`
}

// DisplayName returns Name when set, otherwise "FirstName Surname".
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return strings.TrimSpace(u.FirstName + " " + u.Surname)
}

// Valid reports whether the record satisfies the creation/update rules:
// either both Surname and FirstName are non-empty, or Name is non-empty.
func (u User) Valid() bool {
	if u.Surname != "" && u.FirstName != "" {
		return true
	}
	return u.Name != ""
}
