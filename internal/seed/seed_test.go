package seed

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/reviewhub/item-reviews/internal/core/service"
	"github.com/reviewhub/item-reviews/internal/infrastructure/db"
)

func newSeeder() (*Seeder, *db.Store) {
	log := zerolog.Nop()
	store := db.NewMemory()
	tokens := service.NewTokenService("seed-secret", time.Hour)
	return &Seeder{
		Items:   store.Items,
		Auth:    service.NewAuthService(store.Users, tokens, log),
		Reviews: service.NewReviewService(store.Reviews, store.Items, store.Users, log),
		Log:     log,
	}, store
}

func TestSeeder_CatalogOnly(t *testing.T) {
	ctx := context.Background()
	s, store := newSeeder()

	res, err := s.Run(ctx, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Items != 2 || res.Users != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}

	items, _ := store.Items.List(ctx)
	if len(items) != 2 || items[0].Name != "Laptop" || items[1].Name != "Smartphone" {
		t.Fatalf("unexpected catalog: %+v", items)
	}
}

func TestSeeder_DemoIsRepeatable(t *testing.T) {
	ctx := context.Background()
	s, store := newSeeder()

	res, err := s.Run(ctx, Options{Demo: true, Password: "demo-pass"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Items != 2 || res.Users != 2 || res.Reviews != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}

	items, _ := store.Items.List(ctx)
	reviews, _ := store.Reviews.ListByItem(ctx, items[0].ID)
	if len(reviews) != 1 || reviews[0].Author == nil || reviews[0].Author.Username != "alice123" {
		t.Fatalf("unexpected reviews on first item: %+v", reviews)
	}

	if _, err := s.Auth.Login(ctx, "bob456", "demo-pass"); err != nil {
		t.Fatalf("demo user cannot log in: %v", err)
	}

	again, err := s.Run(ctx, Options{Demo: true, Password: "demo-pass"})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if again != (Result{}) {
		t.Fatalf("second run should insert nothing, got %+v", again)
	}
}

func TestSeeder_DemoNeedsPassword(t *testing.T) {
	s, _ := newSeeder()
	if _, err := s.Run(context.Background(), Options{Demo: true}); err == nil {
		t.Fatal("expected error without password")
	}
}
