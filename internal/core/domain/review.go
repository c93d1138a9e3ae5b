package domain

import "time"

// Review is a rated opinion on an Item written by a User.
type Review struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	UserID    string    `json:"user_id"`
	ItemID    string    `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Author is populated by read queries that join the users table.
	Author *Author `json:"user,omitempty"`
}

// OwnedBy reports whether userID authored the review.
func (r *Review) OwnedBy(userID string) bool {
	return r.UserID == userID
}
