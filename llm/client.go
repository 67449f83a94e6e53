package llm

import (
	"context"
	"errors"
)

// ErrClientUnavailable is returned when no API credential is configured.
// Drivers short-circuit on it without attempting a network call.
var ErrClientUnavailable = errors.New("llm client unavailable: GROQ_API_KEY is not set")

// Client is the provider-agnostic interface for LLM API calls.
// Implement this for each backend (Groq/OpenAI Chat Completions, local
// models, etc.).
type Client interface {
	// Chat sends a single non-streaming chat-completion request and
	// returns the model's response.
	Chat(ctx context.Context, req Request) (Response, error)
}
