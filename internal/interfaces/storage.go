// Package interfaces defines service contracts for Finsight
package interfaces

import (
	"context"
	"time"
)

// CacheStore memoizes computed analytics keyed by request shape. Values are
// opaque JSON bytes. Implementations are best-effort: a backend failure
// surfaces as a miss on read and is swallowed (logged) on write. Analytics
// must keep working, slower, without caching.
type CacheStore interface {
	// Get returns the cached value for key, or ok=false on miss, expiry, or
	// backend failure.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Invalidate removes all entries whose key starts with prefix.
	Invalidate(ctx context.Context, prefix string) error

	// Close releases the backing connection, if any.
	Close() error
}
