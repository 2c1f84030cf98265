// Package memcache implements an in-process cache store with per-entry TTL
package memcache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bobmcallan/finsight/internal/interfaces"
)

// DefaultSweepInterval is how often the background sweep removes expired
// entries. Reads also check expiry, so the sweep only bounds memory growth.
const DefaultSweepInterval = time.Minute

type item struct {
	value     []byte
	expiresAt time.Time
}

// Store implements interfaces.CacheStore in process memory. Suitable for
// single-node deployments and tests; entries do not survive restarts and are
// not shared across instances.
type Store struct {
	mu    sync.Mutex
	items map[string]item
	now   func() time.Time

	stopSweep chan struct{}
	sweepDone chan struct{}
}

// New creates a memory store and starts its expiry sweep.
func New() *Store {
	s := &Store{
		items:     make(map[string]item),
		now:       time.Now,
		stopSweep: make(chan struct{}),
		sweepDone: make(chan struct{}),
	}
	go s.sweep(DefaultSweepInterval)
	return s
}

func (s *Store) sweep(interval time.Duration) {
	defer close(s.sweepDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.CleanExpired()
		case <-s.stopSweep:
			return
		}
	}
}

// CleanExpired removes all expired entries and returns how many were removed.
func (s *Store) CleanExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, it := range s.items {
		if now.After(it.expiresAt) {
			delete(s.items, key)
			removed++
		}
	}
	return removed
}

// Get returns the cached value for key, or ok=false on miss or expiry.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, exists := s.items[key]
	if !exists {
		return nil, false
	}
	if s.now().After(it.expiresAt) {
		delete(s.items, key)
		return nil, false
	}
	return it.value, true
}

// Set stores value under key with the given TTL.
func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = item{value: value, expiresAt: s.now().Add(ttl)}
	return nil
}

// Invalidate removes all entries whose key starts with prefix.
func (s *Store) Invalidate(_ context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
		}
	}
	return nil
}

// Size returns the current number of entries, expired or not.
func (s *Store) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Close stops the expiry sweep.
func (s *Store) Close() error {
	close(s.stopSweep)
	<-s.sweepDone
	return nil
}

// Compile-time check
var _ interfaces.CacheStore = (*Store)(nil)
