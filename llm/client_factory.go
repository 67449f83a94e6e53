package llm

import (
	"os"
	"strings"

	"github.com/openai/openai-go/v3/option"

	"GroqAssistant/misc"
)

// NewClientFromEnv builds a chat client from the GROQ_API_KEY environment
// variable. A missing or empty key is a recoverable condition: the factory
// returns (nil, ErrClientUnavailable) and callers degrade to a no-reply
// answer instead of crashing.
//
// The base URL defaults to Groq's OpenAI-compatible endpoint and can be
// overridden via the [llm] BASE_URL config key (useful for tests and
// self-hosted gateways).
func NewClientFromEnv() (Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	if apiKey == "" {
		return nil, ErrClientUnavailable
	}

	baseURL := misc.GetConfigValueDefault("llm", "BASE_URL", DefaultBaseURL)
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(strings.TrimSpace(baseURL)),
	}
	return NewGroqChatClient(opts...), nil
}

// ModelFromConfig returns the chat model, honoring the [llm] MODEL config
// key and falling back to DefaultModel.
func ModelFromConfig() string {
	return misc.GetConfigValueDefault("llm", "MODEL", DefaultModel)
}
