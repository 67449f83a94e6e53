package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTurns_SingleMessages(t *testing.T) {
	msgs := []Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleUser, Content: "q"},
		{Role: RoleAssistant, Content: "a"},
	}
	turns := BuildTurns(msgs)
	require.Len(t, turns, 3)
	for i, turn := range turns {
		assert.Len(t, turn.Messages, 1)
		assert.Equal(t, msgs[i].Role, turn.Role())
	}
}

func TestBuildTurns_ToolBlockStaysTogether(t *testing.T) {
	msgs := []Message{
		{Role: RoleUser, Content: "what time is it"},
		{Role: RoleAssistant, ToolCalls: []ToolCall{{ID: "c1", Name: "f"}, {ID: "c2", Name: "g"}}},
		{Role: RoleTool, Content: "r1", ToolCallID: "c1"},
		{Role: RoleTool, Content: "r2", ToolCallID: "c2"},
		{Role: RoleAssistant, Content: "it is noon"},
	}
	turns := BuildTurns(msgs)
	require.Len(t, turns, 3)
	assert.Len(t, turns[1].Messages, 3)
	assert.Equal(t, RoleAssistant, turns[1].Role())
	assert.Len(t, turns[2].Messages, 1)
}

func TestBuildTurns_RoundTrip(t *testing.T) {
	msgs := []Message{
		{Role: RoleSystem, Content: "sys"},
		{Role: RoleUser, Content: "q"},
		{Role: RoleAssistant, ToolCalls: []ToolCall{{ID: "c1", Name: "f"}}},
		{Role: RoleTool, Content: "r", ToolCallID: "c1"},
		{Role: RoleAssistant, Content: "a"},
	}
	assert.Equal(t, msgs, FlattenTurns(BuildTurns(msgs)))
}

func TestBuildTurns_Empty(t *testing.T) {
	assert.Nil(t, BuildTurns(nil))
	assert.Empty(t, FlattenTurns(nil))
}
