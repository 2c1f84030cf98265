package storage

import (
	"context"
	"testing"
	"time"

	"github.com/bobmcallan/finsight/internal/common"
	"github.com/bobmcallan/finsight/internal/storage/memcache"
)

func TestNewCacheStoreMemory(t *testing.T) {
	store := NewCacheStore(common.CacheConfig{Backend: "memory"}, common.NewSilentLogger())
	defer store.Close()

	if _, ok := store.(*memcache.Store); !ok {
		t.Fatalf("expected memory store, got %T", store)
	}

	ctx := context.Background()
	if err := store.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, ok := store.Get(ctx, "k"); !ok || string(got) != "v" {
		t.Errorf("expected hit with v, got %q ok=%v", got, ok)
	}
}

func TestNewCacheStoreNone(t *testing.T) {
	store := NewCacheStore(common.CacheConfig{Backend: "none"}, common.NewSilentLogger())
	defer store.Close()

	ctx := context.Background()
	if err := store.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := store.Get(ctx, "k"); ok {
		t.Error("noop store never hits")
	}
	if err := store.Invalidate(ctx, "analytics:"); err != nil {
		t.Errorf("Invalidate failed: %v", err)
	}
}

func TestNewCacheStoreUnreachableSurrealFallsBack(t *testing.T) {
	cfg := common.CacheConfig{
		Backend:   "surrealdb",
		Address:   "ws://127.0.0.1:1",
		Namespace: "finsight",
		Database:  "analytics",
		Username:  "root",
		Password:  "root",
	}

	store := NewCacheStore(cfg, common.NewSilentLogger())
	defer store.Close()

	// degraded to no-cache rather than failing startup
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Error("degraded store must miss")
	}
}
