// Package memory implements ports.Cache in process memory.
package memory

import (
	"context"
	"sync"
	"time"

	"roastline/internal/metrics"
	"roastline/pkg/ports"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Cache is an in-memory TTL cache. Expired entries are not swept; they are
// simply not returned and get overwritten by the next Set. Safe for
// concurrent use.
type Cache[T any] struct {
	namespace string
	ttl       time.Duration
	clock     ports.Clock

	mu      sync.RWMutex
	entries map[string]entry[T]
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	clock ports.Clock
}

// WithClock injects a time source. Defaults to the system clock.
func WithClock(clock ports.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// NewCache creates a cache whose entries expire ttl after being written.
// The namespace labels metrics only; keys are caller-built.
func NewCache[T any](namespace string, ttl time.Duration, opts ...Option) *Cache[T] {
	o := options{clock: ports.SystemClock()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[T]{
		namespace: namespace,
		ttl:       ttl,
		clock:     o.clock,
		entries:   make(map[string]entry[T]),
	}
}

// Get returns the value for key if a live entry exists.
func (c *Cache[T]) Get(ctx context.Context, key string) (T, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.clock.Now().Before(e.expiresAt) {
		metrics.CacheMisses.WithLabelValues(c.namespace).Inc()
		var zero T
		return zero, false, nil
	}

	metrics.CacheHits.WithLabelValues(c.namespace).Inc()
	return e.value, true, nil
}

// Set stores value under key with expiry = now + TTL.
func (c *Cache[T]) Set(ctx context.Context, key string, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{
		value:     value,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
	return nil
}

// Invalidate removes one entry.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T])
}
