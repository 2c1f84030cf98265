package storage

import (
	"context"
	"time"

	"github.com/bobmcallan/finsight/internal/interfaces"
)

// NoopStore is the degraded cache store: every read misses and writes vanish.
// Selected when caching is disabled or the configured backend is unreachable.
type NoopStore struct{}

// NewNoopStore returns a cache store that never caches.
func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (*NoopStore) Get(context.Context, string) ([]byte, bool) {
	return nil, false
}

func (*NoopStore) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (*NoopStore) Invalidate(context.Context, string) error {
	return nil
}

func (*NoopStore) Close() error {
	return nil
}

// Compile-time check
var _ interfaces.CacheStore = (*NoopStore)(nil)
