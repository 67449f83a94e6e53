package chat_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GroqAssistant/chat"
	"GroqAssistant/llm"
	"GroqAssistant/misc"
)

// fakeClient replays scripted responses and records every request.
type fakeClient struct {
	requests  []llm.Request
	responses []llm.Response
	errs      []error
}

func (f *fakeClient) Chat(_ context.Context, req llm.Request) (llm.Response, error) {
	i := len(f.requests)
	f.requests = append(f.requests, req)
	var resp llm.Response
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return resp, err
}

func TestNewConversation_SeedsSystemMessage(t *testing.T) {
	conv := chat.NewConversation(chat.CodingAssistantSystemPrompt)
	require.Equal(t, 1, conv.Len())
	assert.Equal(t, llm.RoleSystem, conv.Messages[0].Role)
	assert.NotEmpty(t, conv.ID)

	other := chat.NewConversation(chat.CodingAssistantSystemPrompt)
	assert.NotEqual(t, conv.ID, other.ID)
}

func TestAdvance_AppendsUserAndAssistant(t *testing.T) {
	cli := &fakeClient{responses: []llm.Response{{
		Content: "Use sort.Slice.",
		Usage:   llm.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}}}
	conv := chat.NewConversation(chat.CodingAssistantSystemPrompt)

	reply, err := chat.Advance(context.Background(), cli, conv, "How do I sort a slice?", llm.DefaultModel)
	require.NoError(t, err)
	assert.Equal(t, "Use sort.Slice.", reply)
	require.Equal(t, 3, conv.Len())
	assert.Equal(t, llm.RoleUser, conv.Messages[1].Role)
	assert.Equal(t, llm.RoleAssistant, conv.Messages[2].Role)

	require.Len(t, cli.requests, 1)
	req := cli.requests[0]
	assert.Equal(t, llm.DefaultModel, req.Model)
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	assert.Equal(t, int64(1024), req.MaxTokens)
	assert.InDelta(t, 1.0, req.TopP, 1e-9)
	assert.Empty(t, req.Tools)
	assert.Empty(t, req.ToolChoice)
}

func TestAdvance_FailureLeavesDanglingUserTurn(t *testing.T) {
	cli := &fakeClient{errs: []error{errors.New("rate limited")}}
	conv := chat.NewConversation(chat.CodingAssistantSystemPrompt)

	reply, err := chat.Advance(context.Background(), cli, conv, "hello", llm.DefaultModel)
	require.Error(t, err)
	assert.Empty(t, reply)
	require.Equal(t, 2, conv.Len())
	assert.Equal(t, llm.RoleUser, conv.Messages[1].Role)

	assert.True(t, conv.Rollback())
	assert.Equal(t, 1, conv.Len())
}

func TestAdvance_NilClientShortCircuits(t *testing.T) {
	conv := chat.NewConversation(chat.CodingAssistantSystemPrompt)

	reply, err := chat.Advance(context.Background(), nil, conv, "hello", llm.DefaultModel)
	require.ErrorIs(t, err, llm.ErrClientUnavailable)
	assert.Empty(t, reply)
	assert.Equal(t, 1, conv.Len())
}

func TestAdvance_OneNetworkCallPerInvocation(t *testing.T) {
	cli := &fakeClient{responses: []llm.Response{{Content: "a"}, {Content: "b"}}}
	conv := chat.NewConversation(chat.CodingAssistantSystemPrompt)

	_, err := chat.Advance(context.Background(), cli, conv, "one", llm.DefaultModel)
	require.NoError(t, err)
	_, err = chat.Advance(context.Background(), cli, conv, "two", llm.DefaultModel)
	require.NoError(t, err)
	assert.Len(t, cli.requests, 2)
	assert.Equal(t, 5, conv.Len())
}

func TestRollback_OnlyPopsUserMessages(t *testing.T) {
	conv := chat.NewConversation(chat.CodingAssistantSystemPrompt)
	conv.Append(llm.Message{Role: llm.RoleUser, Content: "q"})
	conv.Append(llm.Message{Role: llm.RoleAssistant, Content: "a"})

	assert.False(t, conv.Rollback())
	assert.Equal(t, 3, conv.Len())
}

func TestUsage_AccumulatesAcrossTurns(t *testing.T) {
	cli := &fakeClient{responses: []llm.Response{
		{Content: "a", Usage: llm.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}},
		{Content: "b", Usage: llm.Usage{PromptTokens: 20, CompletionTokens: 10, TotalTokens: 30}},
	}}
	conv := chat.NewConversation(chat.CodingAssistantSystemPrompt)

	_, err := chat.Advance(context.Background(), cli, conv, "one", llm.DefaultModel)
	require.NoError(t, err)
	_, err = chat.Advance(context.Background(), cli, conv, "two", llm.DefaultModel)
	require.NoError(t, err)

	usage := conv.Usage()
	assert.Equal(t, int64(30), usage.PromptTokens)
	assert.Equal(t, int64(15), usage.CompletionTokens)
	assert.Equal(t, int64(45), usage.TotalTokens)
}

// withMaxContext points the config loader at a temp file configuring a
// 1 KB token budget.
func withMaxContext1KB(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("misc:\n  MaxContext: \"1\"\n"), 0o644))
	t.Setenv("GROQASSIST_CONFIG", path)
	misc.ResetConfigForTest()
	t.Cleanup(misc.ResetConfigForTest)
}

func TestWindow_TrimsOldestTurnsButKeepsSystem(t *testing.T) {
	withMaxContext1KB(t)

	conv := chat.NewConversation("system prompt")
	long := strings.Repeat("lorem ipsum dolor sit amet ", 40)
	for i := 0; i < 10; i++ {
		conv.Append(llm.Message{Role: llm.RoleUser, Content: long})
		conv.Append(llm.Message{Role: llm.RoleAssistant, Content: long})
	}

	window := conv.Window()
	require.NotEmpty(t, window)
	assert.Equal(t, llm.RoleSystem, window[0].Role)
	assert.Less(t, len(window), conv.Len())
	// The most recent message always survives.
	assert.Equal(t, conv.Messages[conv.Len()-1], window[len(window)-1])
	// The original history is untouched.
	assert.Equal(t, 21, conv.Len())
}

func TestWindow_KeepsToolBlockIntact(t *testing.T) {
	withMaxContext1KB(t)

	conv := chat.NewConversation("system prompt")
	long := strings.Repeat("padding text ", 60)
	for i := 0; i < 8; i++ {
		conv.Append(llm.Message{Role: llm.RoleUser, Content: long})
		conv.Append(llm.Message{Role: llm.RoleAssistant, Content: long})
	}
	conv.Append(llm.Message{Role: llm.RoleUser, Content: "what time is it"})
	conv.Append(llm.Message{Role: llm.RoleAssistant, ToolCalls: []llm.ToolCall{{ID: "c1", Name: "get_current_datetime"}}})
	conv.Append(llm.Message{Role: llm.RoleTool, Content: "12:00", ToolCallID: "c1"})
	conv.Append(llm.Message{Role: llm.RoleAssistant, Content: "It is noon."})

	window := conv.Window()
	// If the assistant tool_calls message survived, its result must too.
	for i, m := range window {
		if m.Role == llm.RoleAssistant && len(m.ToolCalls) > 0 {
			require.Less(t, i+1, len(window))
			assert.Equal(t, "c1", window[i+1].ToolCallID)
		}
	}
}

func TestWindow_NoTrimWithinBudget(t *testing.T) {
	conv := chat.NewConversation("system prompt")
	conv.Append(llm.Message{Role: llm.RoleUser, Content: "short question"})

	window := conv.Window()
	assert.Equal(t, conv.Messages, window)
}
