package llm

// NormalizeMessages reshapes locally-held history into the minimal form the
// Chat Completions API accepts. It is a pure transformation:
//
//   - role and content are always preserved;
//   - assistant messages keep their tool_calls verbatim, and only those
//     messages may carry empty content;
//   - tool messages keep tool_call_id and name;
//   - bookkeeping fields that are illegal for the role are dropped
//     (tool_call_id off non-tool messages, tool_calls off non-assistant
//     messages, name off everything but tool messages).
//
// Normalizing an already-normalized slice yields the same slice content.
func NormalizeMessages(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		n := Message{Role: m.Role, Content: m.Content}
		switch m.Role {
		case RoleAssistant:
			n.ToolCalls = m.ToolCalls
		case RoleTool:
			n.ToolCallID = m.ToolCallID
			n.Name = m.Name
		}
		out = append(out, n)
	}
	return out
}

// SanitizeToolCallMessages repairs histories where a user or system message
// landed between an assistant tool_calls message and its tool results. The
// API expects tool results immediately after the request, so the stray
// message is deferred until the tool block ends. Tool results whose
// tool_call_id was never requested are dropped.
func SanitizeToolCallMessages(messages []Message) []Message {
	if len(messages) == 0 {
		return messages
	}
	allowed := map[string]bool{}
	out := make([]Message, 0, len(messages))
	var deferred []Message
	pendingToolCalls := false
	for _, m := range messages {
		if m.Role == RoleAssistant {
			if len(deferred) > 0 {
				out = append(out, deferred...)
				deferred = nil
			}
			for _, tc := range m.ToolCalls {
				if tc.ID != "" {
					allowed[tc.ID] = true
				}
			}
			pendingToolCalls = len(m.ToolCalls) > 0
			out = append(out, m)
			continue
		}
		if m.Role == RoleTool {
			if m.ToolCallID != "" && allowed[m.ToolCallID] {
				out = append(out, m)
			}
			continue
		}
		if pendingToolCalls {
			deferred = append(deferred, m)
		} else {
			out = append(out, m)
		}
	}
	if len(deferred) > 0 {
		out = append(out, deferred...)
	}
	return out
}
