package redis

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"

	"github.com/reviewhub/item-reviews/internal/api/metrics"
)

func TestNewItemCache_DefaultTTL(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	if c := NewItemCache(client, 0); c.ttl != defaultItemTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultItemTTL, c.ttl)
	}
	if c := NewItemCache(client, time.Minute); c.ttl != time.Minute {
		t.Fatalf("expected 1m ttl, got %v", c.ttl)
	}
}

func TestItemKey(t *testing.T) {
	if got := itemKey("42"); got != "catalog:item:42" {
		t.Fatalf("unexpected key %q", got)
	}
	if itemKey("s") == itemsKey || itemKey("") == itemsKey {
		t.Fatalf("an item id must not collide with the list key")
	}
}

func TestItemCache_UnreachableServerReportsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	cache := NewItemCache(client, time.Minute)
	before := testutil.ToFloat64(metrics.ItemCacheTotal.WithLabelValues("error"))

	items, ok, err := cache.GetItems(context.Background())
	if err == nil || ok || items != nil {
		t.Fatalf("expected error without hit, got items=%v ok=%v err=%v", items, ok, err)
	}
	if got := testutil.ToFloat64(metrics.ItemCacheTotal.WithLabelValues("error")); got != before+1 {
		t.Fatalf("expected error counter to increase by 1, got %v -> %v", before, got)
	}
}
