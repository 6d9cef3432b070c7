package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing session secret in production).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs indicates invalid document-store settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
