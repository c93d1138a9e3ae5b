package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/reviewhub/item-reviews/internal/core/domain"
	"github.com/reviewhub/item-reviews/internal/core/ports"
)

type ReviewService struct {
	reviews ports.ReviewRepository
	items   ports.ItemRepository
	users   ports.UserRepository
	log     zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, items ports.ItemRepository, users ports.UserRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, items: items, users: users, log: log}
}

func (s *ReviewService) ListForItem(ctx context.Context, itemID string) ([]*domain.Review, error) {
	return s.reviews.ListByItem(ctx, itemID)
}

func (s *ReviewService) Get(ctx context.Context, reviewID string) (*domain.Review, error) {
	return s.reviews.FindByID(ctx, reviewID)
}

// Create stores a review authored by input.UserID on an existing item.
func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if strings.TrimSpace(input.Content) == "" || input.Rating == 0 {
		return nil, domain.BadRequest("content and rating are required")
	}

	if _, err := s.items.FindByID(ctx, input.ItemID); err != nil {
		return nil, err
	}
	if err := ensureUser(ctx, s.users, input.UserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.reviews.Create(ctx, &domain.Review{
		Content:   input.Content,
		Rating:    input.Rating,
		UserID:    input.UserID,
		ItemID:    input.ItemID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.log.Error().Err(err).Str("item_id", input.ItemID).Msg("failed to create review")
		return nil, err
	}

	s.log.Info().Str("review_id", created.ID).Str("item_id", created.ItemID).Str("user_id", created.UserID).Msg("review created")
	return created, nil
}

// Update overwrites the fields present in input after checking ownership.
func (s *ReviewService) Update(ctx context.Context, input ports.UpdateReviewInput) (*domain.Review, error) {
	if input.Content == nil && input.Rating == nil {
		return nil, domain.BadRequest("content or rating is required")
	}
	if input.Content != nil && strings.TrimSpace(*input.Content) == "" {
		return nil, domain.BadRequest("content cannot be empty")
	}
	if input.Rating != nil && *input.Rating == 0 {
		return nil, domain.BadRequest("rating cannot be zero")
	}

	review, err := s.ownedReview(ctx, input.ReviewID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		review.Content = *input.Content
	}
	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	review.UpdatedAt = time.Now().UTC()

	updated, err := s.reviews.Update(ctx, review)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("review_id", updated.ID).Str("user_id", input.UserID).Msg("review updated")
	return updated, nil
}

func (s *ReviewService) Delete(ctx context.Context, reviewID, userID string) error {
	if _, err := s.ownedReview(ctx, reviewID, userID); err != nil {
		return err
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}

	s.log.Info().Str("review_id", reviewID).Str("user_id", userID).Msg("review deleted")
	return nil
}

func (s *ReviewService) ownedReview(ctx context.Context, reviewID, userID string) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !review.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return review, nil
}

// ensureUser rejects callers whose token outlived their account.
func ensureUser(ctx context.Context, users ports.UserRepository, userID string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	if _, err := users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUnauthorized
		}
		return err
	}
	return nil
}
