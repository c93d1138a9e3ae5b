// Package memory keeps users, items, reviews and comments in process memory.
// State is lost on restart; it backs tests and local development.
package memory

import (
	"strconv"
	"sync"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

// DB is the shared state behind the repositories. A single RWMutex guards
// every map so that cascading deletes stay atomic.
type DB struct {
	mu sync.RWMutex

	seq      int64
	users    map[string]*domain.User
	byName   map[string]string
	items    map[string]*domain.Item
	reviews  map[string]*domain.Review
	comments map[string]*domain.Comment
}

func New() *DB {
	return &DB{
		users:    make(map[string]*domain.User),
		byName:   make(map[string]string),
		items:    make(map[string]*domain.Item),
		reviews:  make(map[string]*domain.Review),
		comments: make(map[string]*domain.Comment),
	}
}

// nextID must be called with mu held for writing.
func (db *DB) nextID() string {
	db.seq++
	return strconv.FormatInt(db.seq, 10)
}

// idLess orders decimal identifiers numerically.
func idLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func (db *DB) Users() *UserRepository       { return &UserRepository{db: db} }
func (db *DB) Items() *ItemRepository       { return &ItemRepository{db: db} }
func (db *DB) Reviews() *ReviewRepository   { return &ReviewRepository{db: db} }
func (db *DB) Comments() *CommentRepository { return &CommentRepository{db: db} }
