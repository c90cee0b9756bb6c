package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	c.Set(ctx, "users:all", []byte(`["a"]`), time.Minute)

	value, ok := c.Get(ctx, "users:all")
	assert.True(t, ok)
	assert.Equal(t, []byte(`["a"]`), value)

	_, ok = c.Get(ctx, "users:missing")
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	c.Set(ctx, "short", []byte("v"), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get(ctx, "short")
	assert.False(t, ok)
}

func TestMemoryCache_InvalidatePrefix(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	c.Set(ctx, "access_requests:pending||", []byte("a"), time.Minute)
	c.Set(ctx, "access_requests:||app-1", []byte("b"), time.Minute)
	c.Set(ctx, "access_registry:active||", []byte("c"), time.Minute)

	c.Invalidate(ctx, "access_requests")

	_, ok := c.Get(ctx, "access_requests:pending||")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "access_requests:||app-1")
	assert.False(t, ok)

	// Other prefixes survive
	_, ok = c.Get(ctx, "access_registry:active||")
	assert.True(t, ok)
}

func TestMemoryCache_Clear(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	c.Set(ctx, "a", []byte("1"), time.Minute)
	c.Set(ctx, "b", []byte("2"), time.Minute)

	c.Clear(ctx)

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "b")
	assert.False(t, ok)
}
