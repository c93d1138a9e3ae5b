package ports

import (
	"context"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

// ItemService exposes the read-only catalog.
type ItemService interface {
	ListItems(ctx context.Context) ([]*domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
}

// CreateReviewInput carries the data for a new review. UserID is the
// authenticated caller.
type CreateReviewInput struct {
	ItemID  string
	UserID  string
	Content string
	Rating  int
}

// UpdateReviewInput carries a partial update. Nil fields keep their value.
type UpdateReviewInput struct {
	ReviewID string
	UserID   string
	Content  *string
	Rating   *int
}

// ReviewService defines use-case operations for reviews.
type ReviewService interface {
	ListForItem(ctx context.Context, itemID string) ([]*domain.Review, error)
	Get(ctx context.Context, reviewID string) (*domain.Review, error)
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	Update(ctx context.Context, input UpdateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, reviewID, userID string) error
}

type CreateCommentInput struct {
	ReviewID string
	UserID   string
	Content  string
}

type UpdateCommentInput struct {
	CommentID string
	UserID    string
	Content   string
}

// CommentService defines use-case operations for comments.
type CommentService interface {
	Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	Update(ctx context.Context, input UpdateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, commentID, userID string) error
}
