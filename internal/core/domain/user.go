package domain

import "time"

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Author is the public identity of a user embedded in reviews.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
