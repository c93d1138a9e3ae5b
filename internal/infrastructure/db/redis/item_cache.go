package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reviewhub/item-reviews/internal/api/metrics"
	"github.com/reviewhub/item-reviews/internal/core/domain"
)

const (
	defaultItemTTL = 5 * time.Minute
	catalogPrefix  = "catalog:"
	itemsKey       = catalogPrefix + "items"
	itemKeyPrefix  = catalogPrefix + "item:"
)

// ItemCache caches the read-only item catalog in Redis as JSON.
// Keys: catalog:items for the full list, catalog:item:<id> for single items.
type ItemCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewItemCache creates an ItemCache. A non-positive ttl uses defaultItemTTL.
func NewItemCache(client *redis.Client, ttl time.Duration) *ItemCache {
	if ttl <= 0 {
		ttl = defaultItemTTL
	}
	return &ItemCache{client: client, ttl: ttl}
}

func (c *ItemCache) GetItems(ctx context.Context) ([]*domain.Item, bool, error) {
	var items []*domain.Item
	ok, err := c.get(ctx, itemsKey, &items)
	if err != nil || !ok {
		return nil, ok, err
	}
	return items, true, nil
}

func (c *ItemCache) SetItems(ctx context.Context, items []*domain.Item) error {
	return c.set(ctx, itemsKey, items)
}

func (c *ItemCache) GetItem(ctx context.Context, id string) (*domain.Item, bool, error) {
	var item domain.Item
	ok, err := c.get(ctx, itemKey(id), &item)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &item, true, nil
}

func (c *ItemCache) SetItem(ctx context.Context, item *domain.Item) error {
	return c.set(ctx, itemKey(item.ID), item)
}

// Flush drops every cached catalog key. Used after seeding.
func (c *ItemCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, catalogPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("item cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *ItemCache) get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ItemCacheTotal.WithLabelValues("miss").Inc()
		return false, nil
	}
	if err != nil {
		metrics.ItemCacheTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("item cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		metrics.ItemCacheTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("item cache decode %s: %w", key, err)
	}
	metrics.ItemCacheTotal.WithLabelValues("hit").Inc()
	return true, nil
}

func (c *ItemCache) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("item cache encode %s: %w", key, err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

func itemKey(id string) string {
	return itemKeyPrefix + id
}
