package service

import (
	"context"
	"errors"
	"log"

	"healthmate-backend/llm"
	"healthmate-backend/models"

	"github.com/google/uuid"
)

// ErrAIUnavailable is returned when the external AI call fails. The user's
// own message is already persisted by then; only the reply is lost.
var ErrAIUnavailable = errors.New("failed to get AI response")

// ChatStore is the persistence surface ChatService depends on
type ChatStore interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error)
}

// ChatService relays messages to the AI coach with assembled context
type ChatService struct {
	messages ChatStore
	profiles ProfileStore
	entries  TimelineStore
	ai       llm.Client
}

// ChatServiceOption is a functional option for ChatService
type ChatServiceOption func(*ChatService)

// ChatWithMessageRepository sets the chat message store
func ChatWithMessageRepository(messages ChatStore) ChatServiceOption {
	return func(s *ChatService) {
		s.messages = messages
	}
}

// ChatWithProfileRepository sets the profile store used for context assembly
func ChatWithProfileRepository(profiles ProfileStore) ChatServiceOption {
	return func(s *ChatService) {
		s.profiles = profiles
	}
}

// ChatWithTimelineRepository sets the timeline store used for context assembly
func ChatWithTimelineRepository(entries TimelineStore) ChatServiceOption {
	return func(s *ChatService) {
		s.entries = entries
	}
}

// ChatWithLLMClient sets the AI client
func ChatWithLLMClient(ai llm.Client) ChatServiceOption {
	return func(s *ChatService) {
		s.ai = ai
	}
}

// NewChatService creates a new chat service
func NewChatService(opts ...ChatServiceOption) *ChatService {
	s := &ChatService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendMessage persists the user's message, calls the AI with context built
// from the user's profile and recent timeline, and persists the reply. The
// user turn is durable even when the AI call fails; the assistant turn is
// only written on success.
func (s *ChatService) SendMessage(ctx context.Context, userID uuid.UUID, text string) (*models.ChatMessage, error) {
	if s.messages == nil {
		return nil, errors.New("chat message repository not set")
	}
	if s.profiles == nil {
		return nil, errors.New("profile repository not set")
	}
	if s.entries == nil {
		return nil, errors.New("timeline repository not set")
	}
	if s.ai == nil {
		return nil, errors.New("llm client not set")
	}

	userMsg := &models.ChatMessage{
		UserID:  userID,
		Role:    models.RoleUser,
		Content: text,
	}
	if err := s.messages.Create(ctx, userMsg); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := s.entries.ListByUserID(ctx, userID, chatContextEntries)
	if err != nil {
		return nil, err
	}
	systemPrompt := BuildChatSystemPrompt(profile, recent)

	sessionID := "health_chat_" + userID.String()
	reply, err := s.ai.SendMessage(ctx, sessionID, systemPrompt, text)
	if err != nil {
		log.Printf("Chat completion failed for user %s: %v", userID, err)
		return nil, ErrAIUnavailable
	}

	assistantMsg := &models.ChatMessage{
		UserID:  userID,
		Role:    models.RoleAssistant,
		Content: reply,
	}
	if err := s.messages.Create(ctx, assistantMsg); err != nil {
		return nil, err
	}

	return assistantMsg, nil
}

// History returns the user's conversation oldest first, capped at limit
// (default 50)
func (s *ChatService) History(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error) {
	if s.messages == nil {
		return nil, errors.New("chat message repository not set")
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}

	messages, err := s.messages.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*models.ChatMessage{}
	}

	return messages, nil
}
