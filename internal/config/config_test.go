package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"roastline/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	assert.NoError(t, err)

	assert.Equal(t, "memory", cfg.CacheBackend)
	assert.Equal(t, ":8787", cfg.ListenAddr)
	assert.Empty(t, cfg.BackendURL)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, "memory", cfg.CacheBackend)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roastline.yaml")
	content := `backend_url: https://example.supabase.co
backend_key: anon-key
cache_backend: redis
redis_addr: localhost:6379
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	assert.NoError(t, err)

	assert.Equal(t, "https://example.supabase.co", cfg.BackendURL)
	assert.Equal(t, "anon-key", cfg.BackendKey)
	assert.Equal(t, "redis", cfg.CacheBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	// Unset keys keep their defaults.
	assert.Equal(t, ":8787", cfg.ListenAddr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roastline.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("backend_url: https://file.supabase.co\n"), 0o600))

	t.Setenv("SUPABASE_URL", "https://env.supabase.co")
	t.Setenv("ROASTLINE_CACHE", "redis")

	cfg, err := config.Load(path)
	assert.NoError(t, err)

	assert.Equal(t, "https://env.supabase.co", cfg.BackendURL)
	assert.Equal(t, "redis", cfg.CacheBackend)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roastline.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("backend_url: [\n"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}
