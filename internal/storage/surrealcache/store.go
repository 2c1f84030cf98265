// Package surrealcache implements the cache store on SurrealDB
package surrealcache

import (
	"context"
	"fmt"
	"time"

	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/bobmcallan/finsight/internal/common"
	"github.com/bobmcallan/finsight/internal/interfaces"
)

const table = "analytics_cache"

// entry is the stored cache record. Expiry is checked on read and expired
// records are deleted lazily. SurrealDB is the shared store; the TTL logic
// stays in this package.
type entry struct {
	Key        string    `json:"key"`
	Value      string    `json:"value"`
	InsertedAt time.Time `json:"inserted_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Store implements interfaces.CacheStore backed by SurrealDB.
type Store struct {
	db     *surrealdb.DB
	logger *common.Logger
	now    func() time.Time // injectable clock for testing
}

// New connects to SurrealDB and prepares the cache table.
func New(cfg common.CacheConfig, logger *common.Logger) (*Store, error) {
	ctx := context.Background()

	db, err := surrealdb.New(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
	}

	if _, err := db.SignIn(ctx, map[string]interface{}{
		"user": cfg.Username,
		"pass": cfg.Password,
	}); err != nil {
		return nil, fmt.Errorf("failed to sign in to SurrealDB: %w", err)
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to select namespace/database: %w", err)
	}

	sql := fmt.Sprintf("DEFINE TABLE IF NOT EXISTS %s SCHEMALESS", table)
	if _, err := surrealdb.Query[any](ctx, db, sql, nil); err != nil {
		return nil, fmt.Errorf("failed to define table %s: %w", table, err)
	}

	logger.Info().
		Str("address", cfg.Address).
		Str("namespace", cfg.Namespace).
		Str("database", cfg.Database).
		Msg("SurrealDB cache store initialized")

	return &Store{db: db, logger: logger, now: time.Now}, nil
}

// Get returns the cached value for key. Backend failures and expired entries
// are both misses; expired entries are deleted on the way out.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	e, err := surrealdb.Select[entry](ctx, s.db, surrealmodels.NewRecordID(table, key))
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		return nil, false
	}
	if e == nil || e.Key == "" {
		return nil, false
	}

	if s.now().After(e.ExpiresAt) {
		if _, err := surrealdb.Delete[entry](ctx, s.db, surrealmodels.NewRecordID(table, key)); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("Failed to delete expired cache entry")
		}
		return nil, false
	}

	return []byte(e.Value), true
}

// Set stores value under key with the given TTL.
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	now := s.now()
	e := entry{
		Key:        key,
		Value:      string(value),
		InsertedAt: now,
		ExpiresAt:  now.Add(ttl),
	}

	sql := fmt.Sprintf("UPSERT type::record('%s', $id) CONTENT $entry", table)
	vars := map[string]any{"id": key, "entry": e}

	if _, err := surrealdb.Query[[]entry](ctx, s.db, sql, vars); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Invalidate removes all entries whose key starts with prefix.
func (s *Store) Invalidate(ctx context.Context, prefix string) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE string::starts_with(key, $prefix)", table)
	vars := map[string]any{"prefix": prefix}

	if _, err := surrealdb.Query[any](ctx, s.db, sql, vars); err != nil {
		return fmt.Errorf("failed to invalidate cache entries: %w", err)
	}
	return nil
}

// Close releases the SurrealDB connection.
func (s *Store) Close() error {
	s.db.Close(context.Background())
	return nil
}

// Compile-time check
var _ interfaces.CacheStore = (*Store)(nil)
