package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"storage": {
			"write": {"host": "primary.db.local", "port": 5432},
			"read": {"host": "replica.db.local", "port": 5433},
			"database": "users_db",
			"user": "directory",
			"password": "s3cret"
		},
		"workers": {"monitor_interval": "1m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "primary.db.local", cfg.Storage.Write.Host)
	assert.Equal(t, 5432, cfg.Storage.Write.Port)
	assert.Equal(t, "replica.db.local", cfg.Storage.Read.Host)
	assert.Equal(t, 5433, cfg.Storage.Read.Port)
	assert.Equal(t, "users_db", cfg.Storage.Database)
	assert.Equal(t, "directory", cfg.Storage.User)
	assert.Equal(t, "s3cret", cfg.Storage.Password)
	assert.Equal(t, time.Minute, cfg.Workers.MonitorInterval)

	// the file path itself must never leak back into the merged config
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"workers": {"monitor_interval": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Workers.MonitorInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"storage": `)

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON_InvalidString(t *testing.T) {
	var d Duration
	err := d.UnmarshalJSON([]byte(`"yesterday"`))

	require.Error(t, err)
}

func TestDuration_UnmarshalJSON_InvalidType(t *testing.T) {
	var d Duration
	err := d.UnmarshalJSON([]byte(`true`))

	require.Error(t, err)
}
