package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email, compared exactly
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never exposed
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
