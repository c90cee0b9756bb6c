// Package cache provides the advisory read cache used to skip redundant
// backend reads. It is never consulted for writes, and every mutating
// service call invalidates the affected key prefix before returning.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long a cached read stays valid.
const DefaultTTL = 10 * time.Minute

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	// Invalidate removes every entry whose key starts with prefix.
	Invalidate(ctx context.Context, prefix string)
	Clear(ctx context.Context)
}
