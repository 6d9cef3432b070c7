// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Environment values recognized by the application. Anything other than
// EnvProduction is treated as a development deployment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// StructuredConfig is the top-level configuration container for the webclass
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session signing
	// secret and the deployment environment.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the external document store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and response-mode settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionSecret is the key used to sign session cookies. Must be kept
	// confidential. Required when Environment is "production"; a fixed
	// development key is substituted otherwise.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// Environment is the deployment environment flag ("development" or
	// "production"). In production the session cookie carries the Secure
	// attribute.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`
}

// IsProduction reports whether the application runs as a production
// deployment.
func (a App) IsProduction() bool {
	return a.Environment == EnvProduction
}

// Storage groups the configuration for the document-store backend.
type Storage struct {
	// Mongo holds the document-store connection settings.
	Mongo Mongo `envPrefix:"MONGO_"`
}

// Mongo holds connection settings for the article document store.
//
// An empty URI is not a startup failure: store-backed routes degrade to an
// empty-result presentation instead.
type Mongo struct {
	// URI is the document-store connection string
	// (e.g. "mongodb://localhost:27017").
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// Database is the database name holding the article collection.
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`

	// Collection is the article collection name.
	// Env: STORAGE_MONGO_COLLECTION
	Collection string `env:"COLLECTION"`

	// ConnectTimeout bounds the initial connection attempt (e.g. "5s").
	// Env: STORAGE_MONGO_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Server holds network and response-mode settings for the HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// VerboseDelete selects the response shape of DELETE operations for
	// both in-memory resource types uniformly: when true a descriptive
	// text body with 200 is returned, otherwise 204 No Content.
	// Env: SERVER_VERBOSE_DELETE
	VerboseDelete bool `env:"VERBOSE_DELETE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
