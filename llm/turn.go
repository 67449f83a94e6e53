package llm

// Turn is an atomic conversation unit that must not be split when history
// is trimmed to the context window:
//
//   - a lone user / system / assistant message, or
//   - an assistant message with tool calls plus all of its tool results.
type Turn struct {
	Messages []Message `json:"messages"`
}

// Role returns the role of the turn's first message.
func (t Turn) Role() string {
	if len(t.Messages) == 0 {
		return ""
	}
	return t.Messages[0].Role
}

// Size returns the estimated token count of the turn.
func (t Turn) Size() int {
	return CountMessagesTokens(t.Messages)
}

// BuildTurns groups a flat message slice into turns. An assistant message
// with tool calls absorbs the subsequent tool results matching its tool
// call IDs; every other message becomes a single-message turn.
func BuildTurns(messages []Message) []Turn {
	if len(messages) == 0 {
		return nil
	}
	var turns []Turn
	i := 0
	for i < len(messages) {
		m := messages[i]
		if m.Role != RoleAssistant || len(m.ToolCalls) == 0 {
			turns = append(turns, Turn{Messages: []Message{m}})
			i++
			continue
		}
		needed := map[string]bool{}
		for _, tc := range m.ToolCalls {
			if tc.ID != "" {
				needed[tc.ID] = true
			}
		}
		turn := Turn{Messages: []Message{m}}
		j := i + 1
		for j < len(messages) && len(needed) > 0 {
			next := messages[j]
			if next.Role == RoleTool && next.ToolCallID != "" && needed[next.ToolCallID] {
				turn.Messages = append(turn.Messages, next)
				delete(needed, next.ToolCallID)
				j++
				continue
			}
			break
		}
		turns = append(turns, turn)
		i = j
	}
	return turns
}

// FlattenTurns converts a slice of turns back to a flat message slice.
func FlattenTurns(turns []Turn) []Message {
	total := 0
	for _, t := range turns {
		total += len(t.Messages)
	}
	out := make([]Message, 0, total)
	for _, t := range turns {
		out = append(out, t.Messages...)
	}
	return out
}
