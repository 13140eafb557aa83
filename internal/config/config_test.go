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

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 30

[database]
host = "db.local"
port = 5433
user = "svc"
password = "secret"
dbname = "availability"
sslmode = "require"

[logs]
file = "logs/svc.log"
level = "debug"

[metrics]
enabled = true
path = "/internal/metrics"
service_name = "availability"

[catalog_service]
url = "http://catalog:8090"
timeout = 3
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.HTTPPort)
		assert.Equal(t, 30, cfg.Server.ReadTimeout)
		assert.Equal(t, "db.local", cfg.Database.Host)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, "debug", cfg.Logs.Level)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
		assert.Equal(t, "http://catalog:8090", cfg.CatalogService.URL)
		assert.Equal(t, 3, cfg.CatalogService.Timeout)
	})

	t.Run("defaults fill missing values", func(t *testing.T) {
		path := writeConfig(t, `
[database]
host = "localhost"
user = "svc"
dbname = "availability"
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.HTTPPort)
		assert.Equal(t, 15, cfg.Server.ReadTimeout)
		assert.Equal(t, 60, cfg.Server.IdleTimeout)
		assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "info", cfg.Logs.Level)
		assert.False(t, cfg.Metrics.Enabled)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, "availability-service", cfg.Metrics.ServiceName)
		assert.Equal(t, 5, cfg.CatalogService.Timeout)
	})

	t.Run("missing required database fields", func(t *testing.T) {
		path := writeConfig(t, `
[database]
user = "svc"
dbname = "availability"
`)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.host")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.toml")
		assert.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeConfig(t, "[server\nhttp_port=")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "svc",
		Password: "secret",
		DBName:   "availability",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=svc password=secret dbname=availability sslmode=disable",
		cfg.DSN())
}
