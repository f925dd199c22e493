package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: dev
storage: memory
http_server:
  address: 0.0.0.0:3000
  timeout: 5s
database:
  host: db
  password: secret
calendar:
  week_start: monday
  timezone: UTC
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTPServer.Address)
	assert.Equal(t, 5*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	day, err := cfg.Calendar.FirstWeekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, day)

	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "env: local\n"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:3000", cfg.HTTPServer.Address)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "sunday", cfg.Calendar.WeekStart)
	assert.Equal(t, "Local", cfg.Calendar.Timezone)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "config file does not exist")

	_, err = Load(writeConfig(t, "storage: redis\n"))
	assert.ErrorContains(t, err, "unknown storage")

	_, err = Load(writeConfig(t, "calendar:\n  week_start: someday\n"))
	assert.ErrorContains(t, err, "invalid calendar week_start")

	_, err = Load(writeConfig(t, "calendar:\n  timezone: Mars/Olympus\n"))
	assert.ErrorContains(t, err, "invalid calendar timezone")
}
