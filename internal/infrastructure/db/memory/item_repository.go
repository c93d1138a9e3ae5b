package memory

import (
	"context"
	"sort"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

type ItemRepository struct {
	db *DB
}

func (r *ItemRepository) List(_ context.Context) ([]*domain.Item, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	items := make([]*domain.Item, 0, len(r.db.items))
	for _, it := range r.db.items {
		out := *it
		items = append(items, &out)
	}
	sort.Slice(items, func(i, j int) bool { return idLess(items[i].ID, items[j].ID) })
	return items, nil
}

func (r *ItemRepository) FindByID(_ context.Context, id string) (*domain.Item, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	it, ok := r.db.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	out := *it
	return &out, nil
}

func (r *ItemRepository) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored := *item
	stored.ID = r.db.nextID()
	r.db.items[stored.ID] = &stored

	out := stored
	return &out, nil
}
