package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"healthmate-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatService(messages *fakeChatStore, profiles *fakeProfileStore, entries *fakeTimelineStore, ai *scriptedLLM) *ChatService {
	return NewChatService(
		ChatWithMessageRepository(messages),
		ChatWithProfileRepository(profiles),
		ChatWithTimelineRepository(entries),
		ChatWithLLMClient(ai),
	)
}

func TestSendMessagePersistsBothTurns(t *testing.T) {
	messages := &fakeChatStore{}
	ai := &scriptedLLM{reply: "Try winding down earlier tonight."}
	svc := newTestChatService(messages, newFakeProfileStore(), &fakeTimelineStore{}, ai)

	userID := uuid.New()
	reply, err := svc.SendMessage(context.Background(), userID, "I slept badly")
	require.NoError(t, err)

	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Equal(t, "Try winding down earlier tonight.", reply.Content)

	require.Len(t, messages.messages, 2)
	assert.Equal(t, models.RoleUser, messages.messages[0].Role)
	assert.Equal(t, "I slept badly", messages.messages[0].Content)
	assert.Equal(t, models.RoleAssistant, messages.messages[1].Role)

	require.Len(t, ai.calls, 1)
	assert.Equal(t, "health_chat_"+userID.String(), ai.calls[0].SessionID)
}

func TestSendMessageKeepsUserTurnWhenAIFails(t *testing.T) {
	messages := &fakeChatStore{}
	ai := &scriptedLLM{err: errors.New("provider down")}
	svc := newTestChatService(messages, newFakeProfileStore(), &fakeTimelineStore{}, ai)

	_, err := svc.SendMessage(context.Background(), uuid.New(), "hello?")
	assert.ErrorIs(t, err, ErrAIUnavailable)

	// Exactly one user message stored, no assistant message
	require.Len(t, messages.messages, 1)
	assert.Equal(t, models.RoleUser, messages.messages[0].Role)
	assert.Equal(t, "hello?", messages.messages[0].Content)
}

func TestSendMessageAssemblesContext(t *testing.T) {
	profiles := newFakeProfileStore()
	entries := &fakeTimelineStore{}
	ai := &scriptedLLM{reply: "ok"}
	svc := newTestChatService(&fakeChatStore{}, profiles, entries, ai)

	userID := uuid.New()
	require.NoError(t, profiles.Upsert(context.Background(), &models.HealthProfile{
		UserID:            userID,
		SleepPattern:      models.SleepNightOwl,
		SleepHours:        5,
		StressLevel:       models.StressHigh,
		ExerciseFrequency: models.ExerciseNever,
		HealthPersona:     "Night Owl Strategist",
	}))
	require.NoError(t, entries.Create(context.Background(), &models.TimelineEntry{
		UserID: userID, EntryType: models.EntryMood, Title: "tired",
	}))

	_, err := svc.SendMessage(context.Background(), userID, "what's up with me?")
	require.NoError(t, err)

	require.Len(t, ai.calls, 1)
	prompt := ai.calls[0].SystemPrompt
	assert.Contains(t, prompt, "You are a helpful health assistant.")
	assert.Contains(t, prompt, "- Persona: Night Owl Strategist")
	assert.Contains(t, prompt, "- Sleep: night_owl (5h)")
	assert.Contains(t, prompt, "- mood: tired")
}

func TestHistoryReturnsOldestFirst(t *testing.T) {
	messages := &fakeChatStore{}
	svc := newTestChatService(messages, newFakeProfileStore(), &fakeTimelineStore{}, &scriptedLLM{reply: "ok"})

	userID := uuid.New()
	for i := 0; i < 3; i++ {
		_, err := svc.SendMessage(context.Background(), userID, fmt.Sprintf("msg %d", i))
		require.NoError(t, err)
	}

	history, err := svc.History(context.Background(), userID, 0)
	require.NoError(t, err)
	require.Len(t, history, 6)

	assert.Equal(t, "msg 0", history[0].Content)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, models.RoleAssistant, history[1].Role)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].Timestamp.Before(history[i-1].Timestamp))
	}
}

func TestHistoryEmptyIsEmptySlice(t *testing.T) {
	svc := newTestChatService(&fakeChatStore{}, newFakeProfileStore(), &fakeTimelineStore{}, &scriptedLLM{})

	history, err := svc.History(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	require.NotNil(t, history)
	assert.Empty(t, history)
}
