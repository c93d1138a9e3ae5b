package memory

import (
	"context"
	"sort"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

type ReviewRepository struct {
	db *DB
}

// withAuthor copies rv and attaches the author. Caller holds mu.
func (r *ReviewRepository) withAuthor(rv *domain.Review) *domain.Review {
	out := *rv
	out.Author = nil
	if u, ok := r.db.users[rv.UserID]; ok {
		out.Author = &domain.Author{ID: u.ID, Username: u.Username}
	}
	return &out
}

func (r *ReviewRepository) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored := *review
	stored.ID = r.db.nextID()
	stored.Author = nil
	r.db.reviews[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *ReviewRepository) FindByID(_ context.Context, id string) (*domain.Review, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	rv, ok := r.db.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	return r.withAuthor(rv), nil
}

func (r *ReviewRepository) ListByItem(_ context.Context, itemID string) ([]*domain.Review, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	reviews := []*domain.Review{}
	for _, rv := range r.db.reviews {
		if rv.ItemID == itemID {
			reviews = append(reviews, r.withAuthor(rv))
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		a, b := reviews[i], reviews[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return idLess(a.ID, b.ID)
	})
	return reviews, nil
}

func (r *ReviewRepository) Update(_ context.Context, review *domain.Review) (*domain.Review, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	rv, ok := r.db.reviews[review.ID]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	rv.Content = review.Content
	rv.Rating = review.Rating
	rv.UpdatedAt = review.UpdatedAt
	return r.withAuthor(rv), nil
}

// Delete removes the review and every comment attached to it.
func (r *ReviewRepository) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.db.reviews, id)
	for cid, c := range r.db.comments {
		if c.ReviewID == id {
			delete(r.db.comments, cid)
		}
	}
	return nil
}
