// Package config loads runtime configuration from an optional YAML file, a
// .env file, and environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the effective runtime configuration.
type Config struct {
	// BackendURL is the Supabase project URL. Empty selects the built-in
	// demo backend.
	BackendURL string `mapstructure:"backend_url"`
	// BackendKey is the Supabase anon key.
	BackendKey string `mapstructure:"backend_key"`
	// CacheBackend selects the catalog cache: "memory" (default) or "redis".
	CacheBackend string `mapstructure:"cache_backend"`
	// RedisAddr is the Redis address when CacheBackend is "redis".
	RedisAddr string `mapstructure:"redis_addr"`
	// ListenAddr is the bind address for the demo REST server.
	ListenAddr string `mapstructure:"listen_addr"`
}

// envOverrides maps environment variable names onto config keys.
var envOverrides = map[string]string{
	"SUPABASE_URL":      "backend_url",
	"SUPABASE_ANON_KEY": "backend_key",
	"ROASTLINE_CACHE":   "cache_backend",
	"REDIS_ADDR":        "redis_addr",
	"ROASTLINE_LISTEN":  "listen_addr",
}

// Load builds the configuration. path may be empty or point to a YAML file;
// a missing file is not an error. A .env file in the working directory is
// loaded first so plain environment variables win over it.
func Load(path string) (Config, error) {
	// Best effort; absence of .env is the common case.
	_ = godotenv.Load()

	raw := map[string]any{
		"cache_backend": "memory",
		"listen_addr":   ":8787",
	}

	if path != "" {
		content, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(content, &raw); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	for env, key := range envOverrides {
		if v := os.Getenv(env); v != "" {
			raw[key] = v
		}
	}

	var cfg Config
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
