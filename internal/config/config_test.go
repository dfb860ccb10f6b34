package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "turfs"
password = "from-file"

[cache]
enabled = true
addr = "redis:6379"

[planner]
default_buffer_minutes = 5
`)
	t.Setenv("DB_PASSWORD", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.Equal(t, 600, cfg.RateLimit.IdleTimeout)
	assert.Equal(t, 5, cfg.Planner.DefaultBufferMinutes)
	assert.Equal(t, 60, cfg.Planner.DefaultSlotDurationMinutes)
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeConfig(t, `
[legacy_backend]
enabled = true
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := Default().Database
	d.Password = "secret"
	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=turf_service sslmode=disable", d.DSN())
}
