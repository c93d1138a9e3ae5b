package service

import (
	"context"
	"testing"

	"github.com/reviewhub/item-reviews/internal/core/domain"
	"github.com/reviewhub/item-reviews/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type reviewFixture struct {
	reviews *stubReviewRepo
	items   *stubItemRepo
	users   *stubUserRepo
	svc     *ReviewService
}

func newReviewFixture() *reviewFixture {
	f := &reviewFixture{
		reviews: newStubReviewRepo(),
		items:   newStubItemRepo("1", "2"),
		users:   newStubUserRepo(),
	}
	f.users.seed("alice-id", "alice")
	f.users.seed("bob-id", "bob")
	f.svc = NewReviewService(f.reviews, f.items, f.users, discardLogger)
	return f
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func (f *reviewFixture) create(t *testing.T, itemID, userID string) *domain.Review {
	t.Helper()
	r, err := f.svc.Create(context.Background(), ports.CreateReviewInput{
		ItemID: itemID, UserID: userID, Content: "Great!", Rating: 5,
	})
	if err != nil {
		t.Fatalf("create review: %v", err)
	}
	return r
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestReviewService_Create_Success(t *testing.T) {
	f := newReviewFixture()

	r := f.create(t, "1", "alice-id")
	if r.ID == "" || r.UserID != "alice-id" || r.ItemID != "1" {
		t.Fatalf("unexpected review: %+v", r)
	}
	if r.Content != "Great!" || r.Rating != 5 {
		t.Fatalf("unexpected content/rating: %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Fatalf("expected created_at set")
	}
}

func TestReviewService_Create_MissingFields(t *testing.T) {
	f := newReviewFixture()

	cases := []ports.CreateReviewInput{
		{ItemID: "1", UserID: "alice-id", Content: "", Rating: 5},
		{ItemID: "1", UserID: "alice-id", Content: "ok", Rating: 0},
		{ItemID: "1", UserID: "alice-id", Content: "   ", Rating: 3},
	}
	for _, in := range cases {
		_, err := f.svc.Create(context.Background(), in)
		if domain.KindOf(err) != domain.KindBadRequest {
			t.Fatalf("%+v: expected bad request, got %v", in, err)
		}
	}
	if len(f.reviews.reviews) != 0 {
		t.Fatalf("expected no reviews stored")
	}
}

func TestReviewService_Create_UnknownItem(t *testing.T) {
	f := newReviewFixture()

	_, err := f.svc.Create(context.Background(), ports.CreateReviewInput{
		ItemID: "404", UserID: "alice-id", Content: "x", Rating: 1,
	})
	if err != domain.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestReviewService_Create_UnknownAuthor(t *testing.T) {
	f := newReviewFixture()

	_, err := f.svc.Create(context.Background(), ports.CreateReviewInput{
		ItemID: "1", UserID: "ghost", Content: "x", Rating: 1,
	})
	if err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update / Delete ownership
// ---------------------------------------------------------------------------

func TestReviewService_Update_Owner(t *testing.T) {
	f := newReviewFixture()
	r := f.create(t, "1", "alice-id")

	updated, err := f.svc.Update(context.Background(), ports.UpdateReviewInput{
		ReviewID: r.ID, UserID: "alice-id", Content: strPtr("Changed my mind"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Content != "Changed my mind" {
		t.Fatalf("content not updated: %+v", updated)
	}
	if updated.Rating != 5 {
		t.Fatalf("rating should be kept when absent, got %d", updated.Rating)
	}
}

func TestReviewService_Update_NonOwnerForbidden(t *testing.T) {
	f := newReviewFixture()
	r := f.create(t, "1", "bob-id")

	_, err := f.svc.Update(context.Background(), ports.UpdateReviewInput{
		ReviewID: r.ID, UserID: "alice-id", Rating: intPtr(1),
	})
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	stored, _ := f.reviews.FindByID(context.Background(), r.ID)
	if stored.Rating != 5 {
		t.Fatalf("review must be unchanged, got rating %d", stored.Rating)
	}
}

func TestReviewService_Update_NotFound(t *testing.T) {
	f := newReviewFixture()

	_, err := f.svc.Update(context.Background(), ports.UpdateReviewInput{
		ReviewID: "nope", UserID: "alice-id", Rating: intPtr(2),
	})
	if err != domain.ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestReviewService_Update_EmptyBody(t *testing.T) {
	f := newReviewFixture()
	r := f.create(t, "1", "alice-id")

	_, err := f.svc.Update(context.Background(), ports.UpdateReviewInput{ReviewID: r.ID, UserID: "alice-id"})
	if domain.KindOf(err) != domain.KindBadRequest {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestReviewService_Delete_ThenGetNotFound(t *testing.T) {
	f := newReviewFixture()
	r := f.create(t, "1", "alice-id")

	if err := f.svc.Delete(context.Background(), r.ID, "alice-id"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.svc.Get(context.Background(), r.ID); err != domain.ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound after delete, got %v", err)
	}
}

func TestReviewService_Delete_NonOwnerForbidden(t *testing.T) {
	f := newReviewFixture()
	r := f.create(t, "1", "bob-id")

	if err := f.svc.Delete(context.Background(), r.ID, "alice-id"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(f.reviews.deleted) != 0 {
		t.Fatalf("nothing should be deleted")
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestReviewService_ListForItem_OnlyThatItem(t *testing.T) {
	f := newReviewFixture()
	a := f.create(t, "1", "alice-id")
	b := f.create(t, "1", "bob-id")
	f.create(t, "2", "alice-id")

	got, err := f.svc.ListForItem(context.Background(), "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Fatalf("unexpected reviews: %+v", got)
	}
}
