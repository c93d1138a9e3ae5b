package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/reviewhub/item-reviews/internal/api/middleware"
	"github.com/reviewhub/item-reviews/internal/core/domain"
	"github.com/reviewhub/item-reviews/internal/core/ports"
)

type stubReviewService struct {
	createFn func(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error)
	updateFn func(ctx context.Context, in ports.UpdateReviewInput) (*domain.Review, error)
	deleteFn func(ctx context.Context, reviewID, userID string) error
}

func (s *stubReviewService) ListForItem(ctx context.Context, itemID string) ([]*domain.Review, error) {
	return []*domain.Review{}, nil
}

func (s *stubReviewService) Get(ctx context.Context, reviewID string) (*domain.Review, error) {
	return nil, domain.ErrReviewNotFound
}

func (s *stubReviewService) Create(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	return s.createFn(ctx, in)
}

func (s *stubReviewService) Update(ctx context.Context, in ports.UpdateReviewInput) (*domain.Review, error) {
	return s.updateFn(ctx, in)
}

func (s *stubReviewService) Delete(ctx context.Context, reviewID, userID string) error {
	return s.deleteFn(ctx, reviewID, userID)
}

func TestReviewHandler_Create_UsesTokenIdentity(t *testing.T) {
	e := newEcho()
	stub := &stubReviewService{
		createFn: func(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
			if in.UserID != "alice-id" || in.ItemID != "1" || in.Content != "Great!" || in.Rating != 5 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Review{
				ID: "r1", Content: in.Content, Rating: in.Rating, UserID: in.UserID, ItemID: in.ItemID,
				Author: &domain.Author{ID: in.UserID, Username: "alice"},
			}, nil
		},
	}

	c, rec := jsonRequest(e, http.MethodPost, "/api/items/1/reviews", `{"content":"Great!","rating":5,"user_id":"mallory"}`)
	c.SetParamNames("itemId")
	c.SetParamValues("1")
	c.Set(middleware.UserIDKey, "alice-id")

	if err := NewReviewHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp reviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.UserID != "alice-id" || resp.User == nil || resp.User.Username != "alice" {
		t.Fatalf("unexpected review: %+v", resp)
	}
}

func TestReviewHandler_Create_MissingRating(t *testing.T) {
	e := newEcho()
	stub := &stubReviewService{
		createFn: func(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	c, _ := jsonRequest(e, http.MethodPost, "/api/items/1/reviews", `{"content":"Great!"}`)
	c.Set(middleware.UserIDKey, "alice-id")
	expectKind(t, NewReviewHandler(stub).Create(c), domain.KindBadRequest)
}

func TestReviewHandler_Update_IgnoresPathUser(t *testing.T) {
	e := newEcho()
	stub := &stubReviewService{
		updateFn: func(ctx context.Context, in ports.UpdateReviewInput) (*domain.Review, error) {
			if in.UserID != "bob-id" || in.ReviewID != "r1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.Content != nil || in.Rating == nil || *in.Rating != 2 {
				t.Fatalf("expected rating-only update, got %+v", in)
			}
			return nil, domain.ErrForbidden
		},
	}

	c, _ := jsonRequest(e, http.MethodPut, "/api/items/alice-id/reviews/r1", `{"rating":2}`)
	c.SetParamNames("userId", "reviewId")
	c.SetParamValues("alice-id", "r1")
	c.Set(middleware.UserIDKey, "bob-id")

	expectKind(t, NewReviewHandler(stub).Update(c), domain.KindForbidden)
}

func TestReviewHandler_Delete(t *testing.T) {
	e := newEcho()
	stub := &stubReviewService{
		deleteFn: func(ctx context.Context, reviewID, userID string) error {
			if reviewID != "r1" || userID != "alice-id" {
				t.Fatalf("unexpected args: %s %s", reviewID, userID)
			}
			return nil
		},
	}

	c, rec := jsonRequest(e, http.MethodDelete, "/api/items/alice-id/reviews/r1", "")
	c.SetParamNames("userId", "reviewId")
	c.SetParamValues("alice-id", "r1")
	c.Set(middleware.UserIDKey, "alice-id")

	if err := NewReviewHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp messageResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if rec.Code != http.StatusOK || resp.Message != "Review deleted successfully" {
		t.Fatalf("unexpected response: %d %+v", rec.Code, resp)
	}
}
