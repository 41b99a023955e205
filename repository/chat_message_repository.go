package repository

import (
	"context"

	"healthmate-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatMessageRepository handles database operations for chat messages
type ChatMessageRepository struct {
	db *pgxpool.Pool
}

// NewChatMessageRepository creates a new chat message repository
func NewChatMessageRepository(db *pgxpool.Pool) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

// Create appends a message to the user's conversation
func (r *ChatMessageRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (user_id, role, content)
		VALUES ($1, $2, $3)
		RETURNING id, timestamp`

	return r.db.QueryRow(ctx, query, msg.UserID, msg.Role, msg.Content).
		Scan(&msg.ID, &msg.Timestamp)
}

// ListByUserID retrieves up to limit messages for a user, oldest first
func (r *ChatMessageRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error) {
	query := `
		SELECT id, user_id, role, content, timestamp
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY timestamp ASC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.ChatMessage
	for rows.Next() {
		msg := &models.ChatMessage{}
		err := rows.Scan(&msg.ID, &msg.UserID, &msg.Role, &msg.Content, &msg.Timestamp)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}
