package memory

import (
	"context"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

type CommentRepository struct {
	db *DB
}

func (r *CommentRepository) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.reviews[comment.ReviewID]; !ok {
		return nil, domain.ErrReviewNotFound
	}

	stored := *comment
	stored.ID = r.db.nextID()
	r.db.comments[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *CommentRepository) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	out := *c
	return &out, nil
}

func (r *CommentRepository) Update(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.comments[comment.ID]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	c.Content = comment.Content
	c.UpdatedAt = comment.UpdatedAt

	out := *c
	return &out, nil
}

func (r *CommentRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.db.comments, id)
	return nil
}
