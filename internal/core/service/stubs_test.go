package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User // keyed by username
	createErr error
	findErr   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "u-" + user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) seed(id, username string) {
	r.users[username] = &domain.User{ID: id, Username: username}
}

type stubItemRepo struct {
	items   map[string]*domain.Item
	listErr error
	calls   int
}

func newStubItemRepo(ids ...string) *stubItemRepo {
	r := &stubItemRepo{items: make(map[string]*domain.Item)}
	for _, id := range ids {
		r.items[id] = &domain.Item{ID: id, Name: "item " + id}
	}
	return r
}

func (r *stubItemRepo) List(_ context.Context) ([]*domain.Item, error) {
	r.calls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Item, 0, len(r.items))
	for _, it := range r.items {
		clone := *it
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id string) (*domain.Item, error) {
	r.calls++
	it, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *it
	return &clone, nil
}

func (r *stubItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	clone := *item
	r.items[item.ID] = &clone
	return &clone, nil
}

type stubReviewRepo struct {
	reviews   map[string]*domain.Review
	seq       int
	createErr error
	deleted   []string
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *review
	clone.ID = "r" + strconv.Itoa(r.seq)
	r.reviews[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	clone := *rv
	return &clone, nil
}

func (r *stubReviewRepo) ListByItem(_ context.Context, itemID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.ItemID == itemID {
			clone := *rv
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubReviewRepo) Update(_ context.Context, review *domain.Review) (*domain.Review, error) {
	if _, ok := r.reviews[review.ID]; !ok {
		return nil, domain.ErrReviewNotFound
	}
	clone := *review
	r.reviews[review.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.reviews, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	seq      int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.seq++
	clone := *c
	clone.ID = "c" + strconv.Itoa(r.seq)
	r.comments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) Update(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	clone := *c
	r.comments[c.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	delete(r.comments, id)
	return nil
}
