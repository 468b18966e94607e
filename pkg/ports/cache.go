package ports

import (
	"context"
	"time"
)

// Cache is a TTL key/value store. Entries expire a fixed duration after being
// written; an expired entry behaves as a miss, never as an error. The key is
// built by the caller from a namespace and a qualifier (e.g. a region id).
type Cache[T any] interface {
	// Get returns the value for key and whether a live entry was found.
	Get(ctx context.Context, key string) (T, bool, error)

	// Set stores value under key with expiry = now + the cache's TTL.
	Set(ctx context.Context, key string, value T) error
}

// Clock is an injectable time source.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return ClockFunc(time.Now) }
