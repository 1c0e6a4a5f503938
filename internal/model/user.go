package model

import "time"

// User is an account that owns shortened URLs.
// PasswordHash is never serialized.
type User struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Created      time.Time `json:"created_at"`
}
