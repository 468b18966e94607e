// Package cli wires the session to its adapters and runs the terminal event
// loop.
package cli

import (
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"roastline/internal/adapters/demo"
	"roastline/internal/adapters/memory"
	"roastline/internal/adapters/redis"
	"roastline/internal/adapters/supabase"
	"roastline/internal/config"
	"roastline/internal/identity"
	"roastline/internal/session"
	"roastline/pkg/domain"
	"roastline/pkg/ports"
)

// NewSession assembles a session from configuration: the remote backend (or
// the seeded demo store when none is configured) and the catalog caches.
func NewSession(cfg config.Config, logger *slog.Logger) *session.Session {
	var backend ports.Backend
	if cfg.BackendURL != "" {
		backend = supabase.New(cfg.BackendURL, cfg.BackendKey)
	} else {
		logger.Info("no backend configured, using built-in demo store")
		backend = demo.NewSeededBackend()
	}

	regionCache, productCache := newCaches(cfg, logger)

	id := identity.GetOrCreate()
	return session.New(backend, regionCache, productCache, id.Fingerprint, id.ShortID, logger)
}

func newCaches(cfg config.Config, logger *slog.Logger) (ports.Cache[[]domain.Region], ports.Cache[[]domain.Product]) {
	if cfg.CacheBackend == "redis" {
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		logger.Info("using redis catalog cache", "addr", cfg.RedisAddr)
		return redis.NewCache[[]domain.Region](client, session.RegionCacheNamespace, session.RegionCacheTTL),
			redis.NewCache[[]domain.Product](client, session.ProductCacheNamespace, session.ProductCacheTTL)
	}

	return memory.NewCache[[]domain.Region](session.RegionCacheNamespace, session.RegionCacheTTL),
		memory.NewCache[[]domain.Product](session.ProductCacheNamespace, session.ProductCacheTTL)
}
