package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Identity is resolved by username,
// but every other entity references the generated ID.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        *string   `json:"email,omitempty"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	CreatedAt    time.Time `json:"created_at"`
}
