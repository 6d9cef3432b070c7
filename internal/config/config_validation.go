// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"
)

// Default values substituted by applyDefaults for fields left empty by every
// configuration source.
const (
	defaultHTTPAddress     = "localhost:3000"
	defaultMongoDatabase   = "webclass"
	defaultMongoCollection = "articles"
	defaultMongoTimeout    = 5 * time.Second

	// developmentSessionSecret keeps local runs working without any
	// configuration. It is rejected by validate in production.
	developmentSessionSecret = "webclass-development-secret"
)

// applyDefaults fills in well-known defaults for fields that remained empty
// after merging all configuration sources. An empty Mongo URI is deliberately
// left empty: it switches the store-backed routes into degraded mode.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = EnvDevelopment
	}
	if cfg.App.SessionSecret == "" && !cfg.App.IsProduction() {
		cfg.App.SessionSecret = developmentSessionSecret
	}
	if cfg.Storage.Mongo.Database == "" {
		cfg.Storage.Mongo.Database = defaultMongoDatabase
	}
	if cfg.Storage.Mongo.Collection == "" {
		cfg.Storage.Mongo.Collection = defaultMongoCollection
	}
	if cfg.Storage.Mongo.ConnectTimeout == 0 {
		cfg.Storage.Mongo.ConnectTimeout = defaultMongoTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A production deployment must supply its own session signing secret; every
// other field either has a default or degrades gracefully when absent.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.IsProduction() && cfg.App.SessionSecret == "" {
		return fmt.Errorf("%w: session secret is required in production", ErrInvalidAppConfigs)
	}

	return nil
}
