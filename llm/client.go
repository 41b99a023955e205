// Package llm wraps the external AI provider behind a synchronous
// send-message call keyed by a session identifier and a system prompt.
package llm

import "context"

// Client is the conversational AI surface the services depend on. Session IDs
// are stable per user so the provider can keep its own conversational state.
type Client interface {
	SendMessage(ctx context.Context, sessionID, systemPrompt, text string) (string, error)
}
