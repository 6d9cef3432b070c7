package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailTaken is returned when an attempt to register a credential
	// fails because the normalized email is already present in the registry.
	ErrEmailTaken = errors.New("email already registered")

	// ErrCredentialNotFound is returned when no credential matches the
	// requested email or identifier.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrRecordNotFound is returned when an in-memory collection lookup
	// targets an identifier that does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrInvalidRecord is returned when a create or replace operation
	// carries fields that fail validation. The collection is left
	// unmodified.
	ErrInvalidRecord = errors.New("record failed validation")

	// ErrDocumentNotFound is returned when a document-store lookup matches
	// nothing, including lookups with malformed identifiers.
	ErrDocumentNotFound = errors.New("article document was not found")

	// ErrStoreUnavailable is returned when the document store is not
	// configured or cannot be reached. Handlers degrade to an empty-result
	// presentation instead of failing the request.
	ErrStoreUnavailable = errors.New("document store is unavailable")
)
