package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies which side of the conversation a message belongs to
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// Valid reports whether the value is a recognized chat role
func (r ChatRole) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// ChatMessage is one turn of the health coaching conversation. Messages are
// append-only; history is displayed oldest first.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
