// Package chat holds a single conversation's history and the one-call
// driver that advances it by a user/assistant turn pair.
package chat

import (
	"context"

	"github.com/google/uuid"

	"GroqAssistant/llm"
	"GroqAssistant/misc"
)

// Conversation is an ordered, append-only message history starting with
// exactly one system message. It is owned by a single caller; there is no
// locking because there is no concurrent access.
type Conversation struct {
	ID       string
	Messages []llm.Message
}

// NewConversation seeds a conversation with the given system prompt.
func NewConversation(systemPrompt string) *Conversation {
	return &Conversation{
		ID: uuid.NewString(),
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
		},
	}
}

// Append adds a message to the end of the history.
func (c *Conversation) Append(m llm.Message) {
	c.Messages = append(c.Messages, m)
}

// Len returns the number of messages in the history.
func (c *Conversation) Len() int {
	return len(c.Messages)
}

// Rollback removes a trailing user message left dangling by a failed API
// call. It reports whether anything was removed; any other trailing role is
// left untouched.
func (c *Conversation) Rollback() bool {
	if n := len(c.Messages); n > 0 && c.Messages[n-1].Role == llm.RoleUser {
		c.Messages = c.Messages[:n-1]
		return true
	}
	return false
}

// Usage returns the cumulative token usage of this conversation.
func (c *Conversation) Usage() llm.Usage {
	return llm.GetConversationTokenUsage(c.ID).Snapshot()
}

// Window returns the history trimmed to the configured context budget. The
// system message always survives, and an assistant message with tool calls
// is never split from its tool results: trimming drops whole turns, oldest
// first, until the estimate fits.
func (c *Conversation) Window() []llm.Message {
	maxTokens := misc.GetMaxContext()
	turns := llm.BuildTurns(c.Messages)
	if len(turns) == 0 {
		return nil
	}
	var system []llm.Turn
	rest := turns
	if turns[0].Role() == llm.RoleSystem {
		system = turns[:1]
		rest = turns[1:]
	}
	budget := func() int {
		return llm.CountMessagesTokens(llm.FlattenTurns(append(system[:len(system):len(system)], rest...)))
	}
	for len(rest) > 1 && budget() > maxTokens {
		dropped := rest[0]
		rest = rest[1:]
		misc.Debug("trimmed %d message(s) (%s turn, ~%d tokens) from conversation %s",
			len(dropped.Messages), dropped.Role(), dropped.Size(), c.ID)
	}
	return llm.FlattenTurns(append(system[:len(system):len(system)], rest...))
}

// Advance conducts one chat turn: it appends the user query, performs a
// single completion call with the fixed sampling parameters, and appends
// the assistant's reply.
//
// On failure the reply is empty, the error is returned, and the dangling
// user message stays in the history — callers that want a clean slate call
// Rollback. At most one network call is made; nothing is retried.
func Advance(ctx context.Context, cli llm.Client, conv *Conversation, userText, model string) (string, error) {
	if cli == nil {
		return "", llm.ErrClientUnavailable
	}
	conv.Append(llm.Message{Role: llm.RoleUser, Content: userText})

	resp, err := llm.RequestLLM(cli, ctx, llm.Request{
		Model:       model,
		Messages:    llm.NormalizeMessages(conv.Window()),
		Temperature: llm.DefaultTemperature,
		MaxTokens:   llm.DefaultMaxTokens,
		TopP:        llm.DefaultTopP,
	}, conv.ID)
	if err != nil {
		return "", err
	}

	conv.Append(llm.ResponseToMessage(resp))
	return resp.Content, nil
}
