package handler

import "time"

// --- Request types ---

type createReviewRequest struct {
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating"  validate:"required"`
}

// updateReviewRequest is a partial update; absent fields keep their value.
type updateReviewRequest struct {
	Content *string `json:"content"`
	Rating  *int    `json:"rating"`
}

type commentRequest struct {
	Content string `json:"content" validate:"required"`
}

// --- Response types ---
// Kept separate from domain types so the JSON contract does not follow
// internal changes.

type itemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type authorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type reviewResponse struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	Rating    int             `json:"rating"`
	UserID    string          `json:"user_id"`
	ItemID    string          `json:"item_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	User      *authorResponse `json:"user,omitempty"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	ReviewID  string    `json:"review_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
