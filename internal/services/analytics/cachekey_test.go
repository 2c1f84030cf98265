package analytics

import (
	"strings"
	"testing"
)

func TestCacheKeyDeterministic(t *testing.T) {
	a := cacheKey("user-1", "monthly_summary", map[string]string{"year": "2024", "month": "3"})
	b := cacheKey("user-1", "monthly_summary", map[string]string{"month": "3", "year": "2024"})
	if a != b {
		t.Errorf("same request must key identically regardless of map order:\n%s\n%s", a, b)
	}
}

func TestCacheKeyDistinct(t *testing.T) {
	base := cacheKey("user-1", "monthly_summary", map[string]string{"year": "2024", "month": "3"})

	variants := []string{
		cacheKey("user-1", "monthly_summary", map[string]string{"year": "2024", "month": "4"}),
		cacheKey("user-1", "monthly_summary", map[string]string{"year": "2025", "month": "3"}),
		cacheKey("user-1", "budget_vs_actual", map[string]string{"year": "2024", "month": "3"}),
		cacheKey("user-2", "monthly_summary", map[string]string{"year": "2024", "month": "3"}),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collides with base key", i)
		}
	}
}

func TestCacheKeyUserPrefix(t *testing.T) {
	key := cacheKey("user-1", "category_summary", map[string]string{"start_date": "", "end_date": ""})

	if !strings.HasPrefix(key, KeyPrefix) {
		t.Errorf("key %q must carry the %q namespace", key, KeyPrefix)
	}
	if !strings.HasPrefix(key, userKeyPrefix("user-1")) {
		t.Errorf("key %q must sit under its user's invalidation prefix %q", key, userKeyPrefix("user-1"))
	}
	if strings.HasPrefix(key, userKeyPrefix("user-2")) {
		t.Error("key must not match another user's prefix")
	}
}

func TestCacheKeyNoRawIdentifiers(t *testing.T) {
	key := cacheKey("alice@example.com", "monthly_summary", map[string]string{"year": "2024"})
	if strings.Contains(key, "alice") {
		t.Errorf("user identifiers must not appear in keys: %q", key)
	}
}
