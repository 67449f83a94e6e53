package toolCalling

import (
	"context"
	"encoding/json"
	"fmt"

	"GroqAssistant/chat"
	"GroqAssistant/llm"
)

// ToolHandler is one locally callable function exposed to the model.
type ToolHandler interface {
	Name() string
	Description() string
	Parameters() map[string]interface{}
	Execute(args map[string]interface{}) (string, error)
}

// ToolManager is a static registry of tool handlers. The catalogue is fixed
// at startup; there is no plugin mechanism.
type ToolManager struct {
	handlers map[string]ToolHandler
	order    []string
}

func NewToolManager() *ToolManager {
	return &ToolManager{handlers: make(map[string]ToolHandler)}
}

// DefaultToolManager returns a registry holding the built-in catalogue.
func DefaultToolManager() *ToolManager {
	tm := NewToolManager()
	tm.Register(&DateTimeTool{})
	return tm
}

func (tm *ToolManager) Register(handler ToolHandler) {
	if _, exists := tm.handlers[handler.Name()]; !exists {
		tm.order = append(tm.order, handler.Name())
	}
	tm.handlers[handler.Name()] = handler
}

// Definitions exposes the catalogue in registration order.
func (tm *ToolManager) Definitions() []llm.ToolDef {
	defs := make([]llm.ToolDef, 0, len(tm.order))
	for _, name := range tm.order {
		h := tm.handlers[name]
		defs = append(defs, llm.ToolDef{
			Name:        h.Name(),
			Description: h.Description(),
			Parameters:  h.Parameters(),
		})
	}
	return defs
}

// execute runs one requested tool and always produces an in-band result
// string: unknown names, bad arguments, handler errors, and panics are all
// converted to error text fed back to the model, never propagated.
func (tm *ToolManager) execute(call llm.ToolCall) (result string) {
	handler, exists := tm.handlers[call.Name]
	if !exists {
		return fmt.Sprintf("Error: Unknown function '%s'", call.Name)
	}

	args := map[string]interface{}{}
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return fmt.Sprintf("Error: could not parse arguments for '%s': %v", call.Name, err)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("Error: %v", r)
		}
	}()
	out, err := handler.Execute(args)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return out
}

// RunConversation handles one conversation turn that may involve tool
// calls. It is a finite two-round protocol:
//
//  1. Append the user query and ask the model with the catalogue offered
//     and tool choice "auto".
//  2. If no tool was requested, the first response is the reply (one
//     network call total). Otherwise the assistant's request is recorded,
//     each call is executed in order with the result appended as a tool
//     message, and a second request with tool choice "none" produces the
//     final reply (two network calls total — "none" makes a third round
//     structurally impossible).
//
// A failed API call returns an empty reply and the error; the history keeps
// whatever had been appended so far (callers may Rollback a dangling user
// message after a first-call failure).
func (tm *ToolManager) RunConversation(ctx context.Context, cli llm.Client, conv *chat.Conversation, userText, model string) (string, error) {
	if cli == nil {
		return "", llm.ErrClientUnavailable
	}
	conv.Append(llm.Message{Role: llm.RoleUser, Content: userText})

	resp, err := llm.RequestLLM(cli, ctx, llm.Request{
		Model:       model,
		Messages:    llm.NormalizeMessages(conv.Window()),
		Tools:       tm.Definitions(),
		ToolChoice:  llm.ToolChoiceAuto,
		Temperature: llm.DefaultTemperature,
		MaxTokens:   llm.DefaultMaxTokens,
		TopP:        llm.DefaultTopP,
	}, conv.ID)
	if err != nil {
		return "", err
	}

	if len(resp.ToolCalls) == 0 {
		conv.Append(llm.ResponseToMessage(resp))
		return resp.Content, nil
	}

	conv.Append(llm.ResponseToMessage(resp))
	for _, call := range resp.ToolCalls {
		conv.Append(llm.Message{
			Role:       llm.RoleTool,
			ToolCallID: call.ID,
			Name:       call.Name,
			Content:    tm.execute(call),
		})
	}

	final, err := llm.RequestLLM(cli, ctx, llm.Request{
		Model:       model,
		Messages:    llm.NormalizeMessages(llm.SanitizeToolCallMessages(conv.Window())),
		ToolChoice:  llm.ToolChoiceNone,
		Temperature: llm.DefaultTemperature,
		MaxTokens:   llm.DefaultMaxTokens,
		TopP:        llm.DefaultTopP,
	}, conv.ID)
	if err != nil {
		return "", err
	}

	conv.Append(llm.ResponseToMessage(final))
	return final.Content, nil
}
