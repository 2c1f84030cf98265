// Package storage selects and constructs the cache store backend
package storage

import (
	"github.com/bobmcallan/finsight/internal/common"
	"github.com/bobmcallan/finsight/internal/interfaces"
	"github.com/bobmcallan/finsight/internal/storage/memcache"
	"github.com/bobmcallan/finsight/internal/storage/surrealcache"
)

// NewCacheStore builds the cache store named by config. An unreachable
// surrealdb backend is not fatal: the service degrades to the no-op store and
// every analytics request recomputes. Analytics must work, slower, without
// caching.
func NewCacheStore(cfg common.CacheConfig, logger *common.Logger) interfaces.CacheStore {
	switch cfg.Backend {
	case "memory":
		logger.Info().Msg("Using in-process cache store")
		return memcache.New()
	case "none", "":
		logger.Info().Msg("Caching disabled")
		return NewNoopStore()
	default:
		store, err := surrealcache.New(cfg, logger)
		if err != nil {
			logger.Warn().Err(err).
				Str("address", cfg.Address).
				Msg("Cache backend unavailable, analytics will run without caching")
			return NewNoopStore()
		}
		return store
	}
}
