// Package redis implements ports.Cache on a Redis server, for deployments
// where several storefront processes should share one catalog cache. Values
// are stored as JSON; expiry is enforced server-side via key TTL.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"roastline/internal/metrics"
)

// Cache is a Redis-backed TTL cache.
type Cache[T any] struct {
	client    *backend.Client
	namespace string
	ttl       time.Duration
}

// NewCache creates a cache on an existing client. Keys are stored under
// "roastline:<namespace>:<key>".
func NewCache[T any](client *backend.Client, namespace string, ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		client:    client,
		namespace: namespace,
		ttl:       ttl,
	}
}

func (c *Cache[T]) redisKey(key string) string {
	return "roastline:" + c.namespace + ":" + key
}

// Get returns the value for key if the Redis key is still live.
func (c *Cache[T]) Get(ctx context.Context, key string) (T, bool, error) {
	var zero T

	raw, err := c.client.Get(ctx, c.redisKey(key)).Bytes()
	if errors.Is(err, backend.Nil) {
		metrics.CacheMisses.WithLabelValues(c.namespace).Inc()
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("cache get %s: %w", key, err)
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		// A corrupt entry behaves as a miss so the caller reloads.
		metrics.CacheMisses.WithLabelValues(c.namespace).Inc()
		return zero, false, nil
	}

	metrics.CacheHits.WithLabelValues(c.namespace).Inc()
	return value, true, nil
}

// Set stores value under key with the cache's TTL.
func (c *Cache[T]) Set(ctx context.Context, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.redisKey(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
