package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings like "5s" (see Duration).
	jsonBody := `{
		"app": {
			"session_secret": "cookie_secret",
			"environment": "production"
		},
		"server": {
			"http_address": "localhost:8080",
			"verbose_delete": true
		},
		"storage": {
			"mongo": {
				"uri": "mongodb://localhost:27017",
				"database": "webclass",
				"collection": "articles",
				"connect_timeout": "5s"
			}
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "cookie_secret", cfg.App.SessionSecret)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.True(t, cfg.Server.VerboseDelete)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.Mongo.URI)
	assert.Equal(t, "webclass", cfg.Storage.Mongo.Database)
	assert.Equal(t, "articles", cfg.Storage.Mongo.Collection)
	assert.Equal(t, 5*time.Second, cfg.Storage.Mongo.ConnectTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_MalformedBody(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": `), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_UnmarshalJSON_NumberAndString(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1h"`)))
	assert.Equal(t, Duration(time.Hour), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, Duration(time.Second), d)

	require.Error(t, d.UnmarshalJSON([]byte(`"abc"`)))
}
