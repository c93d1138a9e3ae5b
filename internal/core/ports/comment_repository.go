package ports

import (
	"context"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

// CommentRepository defines persistence for comments on reviews.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
