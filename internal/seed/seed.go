// Package seed loads the starter catalog and optional demo accounts.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/reviewhub/item-reviews/internal/core/domain"
	"github.com/reviewhub/item-reviews/internal/core/ports"
)

// Catalog is the starter item set.
var Catalog = []domain.Item{
	{Name: "Laptop", Details: "A high-performance laptop"},
	{Name: "Smartphone", Details: "A smartphone with excellent camera quality"},
}

type demoAccount struct {
	username string
	review   string
	rating   int
}

var demoAccounts = []demoAccount{
	{username: "alice123", review: "Great product!", rating: 5},
	{username: "bob456", review: "Not bad", rating: 3},
}

// Options controls what Run inserts.
type Options struct {
	// Demo also creates the demo users and one review each.
	Demo bool
	// Password is used for every demo user.
	Password string
}

// Seeder inserts seed data through the regular services so passwords are
// hashed and reviews validated like any API write.
type Seeder struct {
	Items   ports.ItemRepository
	Auth    ports.AuthService
	Reviews ports.ReviewService
	Log     zerolog.Logger
}

// Result reports what Run inserted.
type Result struct {
	Items   int
	Users   int
	Reviews int
}

// Run inserts the catalog when it is empty and, with opts.Demo, the demo
// accounts. Existing demo users are left untouched.
func (s *Seeder) Run(ctx context.Context, opts Options) (Result, error) {
	var res Result

	items, err := s.Items.List(ctx)
	if err != nil {
		return res, fmt.Errorf("list items: %w", err)
	}

	if len(items) == 0 {
		for _, it := range Catalog {
			it.CreatedAt = time.Now().UTC()
			created, err := s.Items.Create(ctx, &it)
			if err != nil {
				return res, fmt.Errorf("create item %q: %w", it.Name, err)
			}
			items = append(items, created)
			res.Items++
		}
		s.Log.Info().Int("count", res.Items).Msg("catalog seeded")
	} else {
		s.Log.Info().Int("count", len(items)).Msg("catalog already present, skipping")
	}

	if !opts.Demo {
		return res, nil
	}
	if opts.Password == "" {
		return res, errors.New("demo accounts need a password")
	}

	for i, acct := range demoAccounts {
		user, err := s.Auth.Register(ctx, acct.username, opts.Password)
		if errors.Is(err, domain.ErrUserExists) {
			s.Log.Info().Str("username", acct.username).Msg("demo user exists, skipping")
			continue
		}
		if err != nil {
			return res, fmt.Errorf("register %s: %w", acct.username, err)
		}
		res.Users++

		item := items[i%len(items)]
		if _, err := s.Reviews.Create(ctx, ports.CreateReviewInput{
			ItemID:  item.ID,
			UserID:  user.ID,
			Content: acct.review,
			Rating:  acct.rating,
		}); err != nil {
			return res, fmt.Errorf("review by %s: %w", acct.username, err)
		}
		res.Reviews++
	}

	s.Log.Info().Int("users", res.Users).Int("reviews", res.Reviews).Msg("demo data seeded")
	return res, nil
}
