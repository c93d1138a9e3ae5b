package ports

import (
	"context"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

// ReviewRepository defines persistence for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	// FindByID returns the review with its Author populated.
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	// ListByItem returns the item's reviews with Author populated, ordered by
	// creation time then ID.
	ListByItem(ctx context.Context, itemID string) ([]*domain.Review, error)
	// Update overwrites content and rating.
	Update(ctx context.Context, review *domain.Review) (*domain.Review, error)
	// Delete removes the review and its comments.
	Delete(ctx context.Context, id string) error
}
