package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roastline/internal/adapters/memory"
	"roastline/pkg/ports"
)

// Compile-time contract check.
var _ ports.Cache[string] = (*memory.Cache[string])(nil)

func TestCache_GetSet(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache[[]string]("test", time.Minute)

	_, ok, err := cache.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, cache.Set(ctx, "k", []string{"a", "b"}))

	got, ok, err := cache.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := ports.ClockFunc(func() time.Time { return now })

	cache := memory.NewCache[int]("test", 5*time.Minute, memory.WithClock(clock))
	assert.NoError(t, cache.Set(ctx, "k", 42))

	// Just inside the TTL.
	now = now.Add(5*time.Minute - time.Second)
	got, ok, _ := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	// Exactly at expiry the entry is gone.
	now = now.Add(time.Second)
	_, ok, _ = cache.Get(ctx, "k")
	assert.False(t, ok)

	// A rewrite restarts the TTL.
	assert.NoError(t, cache.Set(ctx, "k", 7))
	got, ok, _ = cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, 7, got)
}

func TestCache_InvalidateAndClear(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache[int]("test", time.Minute)

	_ = cache.Set(ctx, "a", 1)
	_ = cache.Set(ctx, "b", 2)

	cache.Invalidate("a")
	_, ok, _ := cache.Get(ctx, "a")
	assert.False(t, ok)
	_, ok, _ = cache.Get(ctx, "b")
	assert.True(t, ok)

	cache.Clear()
	_, ok, _ = cache.Get(ctx, "b")
	assert.False(t, ok)
}
