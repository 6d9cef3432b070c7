// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are combined through a small builder; earlier sources win for
// non-zero fields, and well-known defaults fill whatever remains empty.
// The main entry point is [GetStructuredConfig].
package config
