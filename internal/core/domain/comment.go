package domain

import "time"

// Comment is a reply to a Review.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	ReviewID  string    `json:"review_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Comment) OwnedBy(userID string) bool {
	return c.UserID == userID
}
