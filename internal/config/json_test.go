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

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"version": "2.0.0"},
		"storage": {"db": {"dsn": "pengguna.db", "driver": "sqlite3"}},
		"server": {"http_address": "localhost:8081", "request_timeout": "1m"},
		"adapter": {"base_url": "http://localhost:8081", "request_timeout": "15s"},
		"export": {"dir": "/data/csv"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "pengguna.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8081", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/data/csv", cfg.Export.Dir)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"server": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)

	raw, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(raw))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(raw))
	assert.Equal(t, d, back)
}
