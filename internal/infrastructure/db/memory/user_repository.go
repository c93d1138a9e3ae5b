package memory

import (
	"context"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

type UserRepository struct {
	db *DB
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, taken := r.db.byName[user.Username]; taken {
		return nil, domain.ErrUserExists
	}

	stored := *user
	stored.ID = r.db.nextID()
	r.db.users[stored.ID] = &stored
	r.db.byName[stored.Username] = stored.ID

	out := stored
	return &out, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	id, ok := r.db.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *r.db.users[id]
	return &out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}
