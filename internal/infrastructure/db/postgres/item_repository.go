package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

type ItemRepository struct {
	db DBTX
}

func NewItemRepository(db DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, details, created_at FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []*domain.Item{}
	for rows.Next() {
		var (
			id   int64
			item domain.Item
		)
		if err := rows.Scan(&id, &item.Name, &item.Details, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.ID = formatID(id)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, domain.ErrItemNotFound
	}

	var item domain.Item
	err := r.db.QueryRowContext(ctx, `SELECT id, name, details, created_at FROM items WHERE id = $1`, n).
		Scan(&n, &item.Name, &item.Details, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	item.ID = formatID(n)
	return &item, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	query := `INSERT INTO items (name, details, created_at) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	if err := r.db.QueryRowContext(ctx, query, item.Name, item.Details, item.CreatedAt).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	created := *item
	created.ID = formatID(id)
	return &created, nil
}
