package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/reviewhub/item-reviews/internal/core/domain"
	"github.com/reviewhub/item-reviews/internal/core/ports"
)

type CommentService struct {
	comments ports.CommentRepository
	reviews  ports.ReviewRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, reviews ports.ReviewRepository, users ports.UserRepository, log zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, reviews: reviews, users: users, log: log}
}

func (s *CommentService) Create(ctx context.Context, input ports.CreateCommentInput) (*domain.Comment, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.BadRequest("comment content is required")
	}

	if _, err := s.reviews.FindByID(ctx, input.ReviewID); err != nil {
		return nil, err
	}
	if err := ensureUser(ctx, s.users, input.UserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.comments.Create(ctx, &domain.Comment{
		Content:   input.Content,
		UserID:    input.UserID,
		ReviewID:  input.ReviewID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.log.Error().Err(err).Str("review_id", input.ReviewID).Msg("failed to create comment")
		return nil, err
	}

	s.log.Info().Str("comment_id", created.ID).Str("review_id", created.ReviewID).Msg("comment created")
	return created, nil
}

func (s *CommentService) Update(ctx context.Context, input ports.UpdateCommentInput) (*domain.Comment, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.BadRequest("comment content is required")
	}

	comment, err := s.ownedComment(ctx, input.CommentID, input.UserID)
	if err != nil {
		return nil, err
	}

	comment.Content = input.Content
	comment.UpdatedAt = time.Now().UTC()

	updated, err := s.comments.Update(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("comment_id", updated.ID).Str("user_id", input.UserID).Msg("comment updated")
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID, userID string) error {
	if _, err := s.ownedComment(ctx, commentID, userID); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	s.log.Info().Str("comment_id", commentID).Str("user_id", userID).Msg("comment deleted")
	return nil
}

func (s *CommentService) ownedComment(ctx context.Context, commentID, userID string) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !comment.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return comment, nil
}
