// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_EnvOnly(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_SESSION_SECRET": "from_env",
		"SERVER_ADDRESS":     "localhost:9999",
	})

	cfg, err := newConfigBuilder().withEnv().build()

	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.App.SessionSecret)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
}

func TestConfigBuilder_FirstSourceWins(t *testing.T) {
	// mergo keeps the first non-zero value, so env (added first) must win
	// over a later source for the same field.
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS": "env-wins:1111",
	})

	b := newConfigBuilder().withEnv()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{HTTPAddress: "later-source:2222"},
	})

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "env-wins:1111", cfg.Server.HTTPAddress)
}

func TestConfigBuilder_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := newConfigBuilder().withEnv().build()

	require.NoError(t, err)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, developmentSessionSecret, cfg.App.SessionSecret)
	assert.Equal(t, defaultMongoDatabase, cfg.Storage.Mongo.Database)
	assert.Equal(t, defaultMongoCollection, cfg.Storage.Mongo.Collection)
	assert.Equal(t, 5*time.Second, cfg.Storage.Mongo.ConnectTimeout)
	// no URI configured: store-backed routes run degraded, not failed
	assert.Empty(t, cfg.Storage.Mongo.URI)
}

func TestConfigBuilder_ProductionRequiresSecret(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_ENVIRONMENT": "production",
	})

	_, err := newConfigBuilder().withEnv().build()

	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestConfigBuilder_AccumulatedErrorFailsBuild(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_MONGO_CONNECT_TIMEOUT": "bogus",
	})

	cfg, err := newConfigBuilder().withEnv().build()

	require.Error(t, err)
	assert.Nil(t, cfg)
}
