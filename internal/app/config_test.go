package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meusistema/clientes/internal/platform/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	cfg, err := LoadConfig(logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "clientesApp", cfg.AppName)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 20, cfg.HTTP.PageSizeDefault)
	assert.Equal(t, 2000, cfg.HTTP.PageSizeMax)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app_name: escolaApp
port: 9090
db:
  driver: sqlite
  sqlite_path: "file::memory:"
http:
  page_size_default: 50
  shutdown_timeout: 3s
  cors_allowed_origins: ["https://a.example"]
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://b.example, https://c.example")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "authorization=Bearer x")

	cfg, err := LoadConfig(logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "escolaApp", cfg.AppName)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBConfig().Driver)
	assert.Equal(t, 50, cfg.HTTP.PageSizeDefault)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, []string{"https://b.example", "https://c.example"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, "Bearer x", cfg.OtelConfig().Headers["authorization"])
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":       {"DB_DRIVER": "mysql"},
		"default above max":    {"PAGE_SIZE_DEFAULT": "300", "PAGE_SIZE_MAX": "100"},
		"sampler out of range": {"OTEL_SAMPLER_RATIO": "1.5"},
		"bad port":             {"PORT": "70000"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("CONFIG_FILE", "")
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(logger.Nop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := LoadConfig(logger.Nop())
	require.Error(t, err)
}
