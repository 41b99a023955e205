package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
)

// defaultModel is the Gemini model used for chat and persona generation
const defaultModel = "gemini-2.0-flash"

// GeminiClient implements Client on top of the Gemini API. It remembers
// conversation history per session ID so follow-up messages in the same
// session carry context, while the system prompt is rebuilt fresh on every
// call (it embeds the user's latest profile and timeline).
type GeminiClient struct {
	client *genai.Client
	model  string

	mu       sync.Mutex
	sessions map[string][]*genai.Content
}

// NewGeminiClient wraps an initialized genai client
func NewGeminiClient(client *genai.Client) *GeminiClient {
	return &GeminiClient{
		client:   client,
		model:    defaultModel,
		sessions: make(map[string][]*genai.Content),
	}
}

// SendMessage sends one user message within the named session and returns the
// model's text reply
func (g *GeminiClient) SendMessage(ctx context.Context, sessionID, systemPrompt, text string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	chat := model.StartChat()
	chat.History = g.history(sessionID)

	resp, err := chat.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	reply := collectText(resp)
	if reply == "" {
		return "", errors.New("gemini returned no text content")
	}

	// SendMessage appended both turns to chat.History on success
	g.remember(sessionID, chat.History)

	return reply, nil
}

func (g *GeminiClient) history(sessionID string) []*genai.Content {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sessions[sessionID]
}

func (g *GeminiClient) remember(sessionID string, history []*genai.Content) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[sessionID] = history
}

func collectText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(b.String())
}
