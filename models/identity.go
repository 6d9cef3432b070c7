package models

import "strings"

// Role constants for registered accounts.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Credential is an authentication record held by the identity store.
// It is created once at registration and never updated or deleted.
// The password hash must never leave the service layer.
type Credential struct {
	// ID is an opaque token unique per account. Sessions store this value
	// and nothing else.
	ID string `json:"id"`

	// Email is the unique account key, stored lowercase and trimmed.
	Email string `json:"email"`

	// PasswordHash is the salted one-way hash of the account password.
	// Excluded from JSON serialization.
	PasswordHash string `json:"-"`

	// Role is the account's authorization role.
	Role string `json:"role"`
}

// Identity is the public identity tuple reconstructed from a session on each
// request. It carries no secret material.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Identity returns the public identity tuple of the credential.
func (c Credential) Identity() Identity {
	return Identity{ID: c.ID, Email: c.Email, Role: c.Role}
}

// NormalizeEmail canonicalizes an email for use as a credential key:
// surrounding whitespace removed, lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
