package ports

import (
	"context"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

// ItemRepository reads the item catalog. Create is only used by the seeder.
type ItemRepository interface {
	List(ctx context.Context) ([]*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
}

// ItemCache is a read-through cache for the item catalog.
// A miss is reported as (nil, false, nil).
type ItemCache interface {
	GetItems(ctx context.Context) ([]*domain.Item, bool, error)
	SetItems(ctx context.Context, items []*domain.Item) error
	GetItem(ctx context.Context, id string) (*domain.Item, bool, error)
	SetItem(ctx context.Context, item *domain.Item) error
}
