package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

type CommentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	userID, ok := parseID(comment.UserID)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	reviewID, ok := parseID(comment.ReviewID)
	if !ok {
		return nil, domain.ErrReviewNotFound
	}

	query := `INSERT INTO comments (content, user_id, review_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query, comment.Content, userID, reviewID,
		comment.CreatedAt, comment.UpdatedAt).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created := *comment
	created.ID = formatID(id)
	return &created, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, domain.ErrCommentNotFound
	}

	var (
		userID, reviewID int64
		comment          domain.Comment
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, content, user_id, review_id, created_at, updated_at FROM comments WHERE id = $1`, n).
		Scan(&n, &comment.Content, &userID, &reviewID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	comment.ID = formatID(n)
	comment.UserID = formatID(userID)
	comment.ReviewID = formatID(reviewID)
	return &comment, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	n, ok := parseID(comment.ID)
	if !ok {
		return nil, domain.ErrCommentNotFound
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE comments SET content = $1, updated_at = $2 WHERE id = $3`,
		comment.Content, comment.UpdatedAt, n)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, domain.ErrCommentNotFound
	}
	return r.FindByID(ctx, comment.ID)
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	n, ok := parseID(id)
	if !ok {
		return domain.ErrCommentNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, n)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
