package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/reviewhub/item-reviews/internal/core/domain"
)

const reviewColumns = `r.id, r.content, r.rating, r.user_id, r.item_id, r.created_at, r.updated_at, u.username`

type ReviewRepository struct {
	db DBTX
}

func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var (
		id, userID, itemID int64
		username           string
		review             domain.Review
	)
	if err := row.Scan(&id, &review.Content, &review.Rating, &userID, &itemID,
		&review.CreatedAt, &review.UpdatedAt, &username); err != nil {
		return nil, err
	}
	review.ID = formatID(id)
	review.UserID = formatID(userID)
	review.ItemID = formatID(itemID)
	review.Author = &domain.Author{ID: review.UserID, Username: username}
	return &review, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	userID, ok := parseID(review.UserID)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	itemID, ok := parseID(review.ItemID)
	if !ok {
		return nil, domain.ErrItemNotFound
	}

	query := `INSERT INTO reviews (content, rating, user_id, item_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query, review.Content, review.Rating, userID, itemID,
		review.CreatedAt, review.UpdatedAt).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	created := *review
	created.ID = formatID(id)
	return &created, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	n, ok := parseID(id)
	if !ok {
		return nil, domain.ErrReviewNotFound
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews r JOIN users u ON u.id = r.user_id WHERE r.id = $1`
	review, err := scanReview(r.db.QueryRowContext(ctx, query, n))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return review, nil
}

func (r *ReviewRepository) ListByItem(ctx context.Context, itemID string) ([]*domain.Review, error) {
	n, ok := parseID(itemID)
	if !ok {
		return []*domain.Review{}, nil
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews r JOIN users u ON u.id = r.user_id
		WHERE r.item_id = $1
		ORDER BY r.created_at, r.id`

	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	n, ok := parseID(review.ID)
	if !ok {
		return nil, domain.ErrReviewNotFound
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE reviews SET content = $1, rating = $2, updated_at = $3 WHERE id = $4`,
		review.Content, review.Rating, review.UpdatedAt, n)
	if err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, domain.ErrReviewNotFound
	}
	return r.FindByID(ctx, review.ID)
}

// Delete removes the review; comments go with it through ON DELETE CASCADE.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	n, ok := parseID(id)
	if !ok {
		return domain.ErrReviewNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, n)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
