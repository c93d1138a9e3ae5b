package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reviewhub/item-reviews/internal/core/domain"
	"github.com/reviewhub/item-reviews/internal/core/ports"
)

type ItemService struct {
	repo  ports.ItemRepository
	cache ports.ItemCache
	log   zerolog.Logger
}

// NewItemService returns an ItemService. A nil cache disables caching.
func NewItemService(repo ports.ItemRepository, cache ports.ItemCache, log zerolog.Logger) *ItemService {
	if cache == nil {
		cache = noopItemCache{}
	}
	return &ItemService{repo: repo, cache: cache, log: log}
}

// ListItems returns the whole catalog, preferring the cache.
func (s *ItemService) ListItems(ctx context.Context) ([]*domain.Item, error) {
	items, ok, err := s.cache.GetItems(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("item cache read failed, falling back to store")
	} else if ok {
		return items, nil
	}

	items, err = s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetItems(ctx, items); err != nil {
		s.log.Warn().Err(err).Msg("item cache write failed")
	}
	return items, nil
}

func (s *ItemService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	item, ok, err := s.cache.GetItem(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("item_id", id).Msg("item cache read failed, falling back to store")
	} else if ok {
		return item, nil
	}

	item, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetItem(ctx, item); err != nil {
		s.log.Warn().Err(err).Str("item_id", id).Msg("item cache write failed")
	}
	return item, nil
}

type noopItemCache struct{}

func (noopItemCache) GetItems(context.Context) ([]*domain.Item, bool, error) { return nil, false, nil }
func (noopItemCache) SetItems(context.Context, []*domain.Item) error         { return nil }
func (noopItemCache) GetItem(context.Context, string) (*domain.Item, bool, error) {
	return nil, false, nil
}
func (noopItemCache) SetItem(context.Context, *domain.Item) error { return nil }
