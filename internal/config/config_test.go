package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("BIZA_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 4096, cfg.Evaluation.MaxSourceLength)
	assert.Equal(t, 5*time.Minute, cfg.Evaluation.CacheTTL)
	assert.Equal(t, time.Minute, cfg.Evaluation.CacheCleanup)
	assert.Equal(t, 10000, cfg.Evaluation.CacheMaxEntries)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "biza.yaml")
	content := `
server:
  port: "9090"
  read_timeout: 3s
evaluation:
  max_source_length: 128
database:
  enabled: true
  name: exprs
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("ENV_PATH", filepath.Join(dir, "missing.env"))
	t.Setenv("BIZA_CONFIG", path)
	t.Setenv("DB_NAME", "override")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 128, cfg.Evaluation.MaxSourceLength)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "override", cfg.Database.Name)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CorsOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("BIZA_TEST_DOTENV_PORT=7070\n"), 0o600))

	t.Setenv("ENV_PATH", envPath)
	t.Setenv("BIZA_CONFIG", "")
	t.Cleanup(func() { os.Unsetenv("BIZA_TEST_DOTENV_PORT") })

	_, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", os.Getenv("BIZA_TEST_DOTENV_PORT"))
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("BIZA_CONFIG", "")
	t.Setenv("SERVER_PORT", "70000")

	_, err := Load()
	assert.ErrorContains(t, err, "port must be between 1 and 65535")
}

func TestLoadCacheSettingsFromEnv(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("BIZA_CONFIG", "")
	t.Setenv("CACHE_TTL", "10m")
	t.Setenv("CACHE_CLEANUP", "30s")
	t.Setenv("CACHE_MAX_ENTRIES", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Minute, cfg.Evaluation.CacheTTL)
	assert.Equal(t, 30*time.Second, cfg.Evaluation.CacheCleanup)
	assert.Equal(t, 50, cfg.Evaluation.CacheMaxEntries)
}

func TestLoadRejectsBadCacheSettings(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"zero cleanup", "evaluation:\n  cache_cleanup: 0s\n", "cache cleanup interval must be positive"},
		{"negative cleanup", "evaluation:\n  cache_cleanup: -5s\n", "cache cleanup interval must be positive"},
		{"zero ttl", "evaluation:\n  cache_ttl: 0s\n", "cache ttl must be positive"},
		{"negative max entries", "evaluation:\n  cache_max_entries: -1\n", "cache max entries must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "biza.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			t.Setenv("ENV_PATH", filepath.Join(dir, "missing.env"))
			t.Setenv("BIZA_CONFIG", path)

			_, err := Load()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadRejectsZeroCleanupFromEnv(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("BIZA_CONFIG", "")
	t.Setenv("CACHE_CLEANUP", "0s")

	_, err := Load()
	assert.ErrorContains(t, err, "cache cleanup interval must be positive")
}

func TestDSN(t *testing.T) {
	cfg := Default()
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password= dbname=biza sslmode=disable search_path=public",
		cfg.DSN())
}
