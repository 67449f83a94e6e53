package llm

import (
	"sync"

	"github.com/tiktoken-go/tokenizer"
)

var (
	bpeOnce sync.Once
	bpeEnc  tokenizer.Codec
)

// getEncoder returns a singleton BPE encoder. The Groq-hosted Llama models
// use their own tokenizer; cl100k_base is close enough for window budgeting,
// which only needs a consistent estimate, not an exact count.
func getEncoder() tokenizer.Codec {
	bpeOnce.Do(func() {
		var err error
		bpeEnc, err = tokenizer.Get(tokenizer.Cl100kBase)
		if err != nil {
			panic("failed to initialize tiktoken encoder: " + err.Error())
		}
	})
	return bpeEnc
}

// CountTokens returns the number of BPE tokens in the given text.
func CountTokens(text string) int {
	enc := getEncoder()
	ids, _, _ := enc.Encode(text)
	return len(ids)
}

// CountMessageTokens estimates the token count for a single Message:
// 4 overhead tokens per message (role, separators) + content + tool call
// payloads.
func CountMessageTokens(m Message) int {
	tokens := 4
	tokens += CountTokens(m.Content)
	if m.Role != "" {
		tokens += CountTokens(m.Role)
	}
	for _, tc := range m.ToolCalls {
		tokens += CountTokens(tc.Name)
		tokens += CountTokens(tc.Arguments)
		tokens += 3 // id, type, function framing
	}
	if m.ToolCallID != "" {
		tokens += CountTokens(m.ToolCallID)
	}
	return tokens
}

// CountMessagesTokens returns the total token count for a slice of
// Messages, plus 3 tokens for the assistant reply priming.
func CountMessagesTokens(messages []Message) int {
	tokens := 3
	for _, m := range messages {
		tokens += CountMessageTokens(m)
	}
	return tokens
}
