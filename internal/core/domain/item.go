package domain

import "time"

// Item is a catalog entry. Items are read-only through the API.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
