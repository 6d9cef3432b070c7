// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_SESSION_SECRET": "cookie_secret",
		"APP_ENVIRONMENT":    "production",

		"SERVER_ADDRESS":        "localhost:8080",
		"SERVER_VERBOSE_DELETE": "true",

		// Storage has a nested prefix: STORAGE_ + MONGO_
		"STORAGE_MONGO_URI":             "mongodb://localhost:27017",
		"STORAGE_MONGO_DATABASE":        "webclass",
		"STORAGE_MONGO_COLLECTION":      "articles",
		"STORAGE_MONGO_CONNECT_TIMEOUT": "10s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "cookie_secret", cfg.App.SessionSecret)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.True(t, cfg.App.IsProduction())

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.True(t, cfg.Server.VerboseDelete)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.Mongo.URI)
	assert.Equal(t, "webclass", cfg.Storage.Mongo.Database)
	assert.Equal(t, "articles", cfg.Storage.Mongo.Collection)
	assert.Equal(t, 10*time.Second, cfg.Storage.Mongo.ConnectTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_SESSION_SECRET": "cookie_secret",
		"SERVER_ADDRESS":     "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "cookie_secret", cfg.App.SessionSecret)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.Mongo.URI)
	assert.False(t, cfg.Server.VerboseDelete)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_MONGO_CONNECT_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_SESSION_SECRET",
		"APP_ENVIRONMENT",
		"SERVER_ADDRESS",
		"SERVER_VERBOSE_DELETE",
		"STORAGE_MONGO_URI",
		"STORAGE_MONGO_DATABASE",
		"STORAGE_MONGO_COLLECTION",
		"STORAGE_MONGO_CONNECT_TIMEOUT",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
