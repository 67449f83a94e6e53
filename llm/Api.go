package llm

import (
	"context"
	"runtime"

	"GroqAssistant/misc"
)

// RequestLLM sends one chat request through the abstract Client interface.
// Errors are logged at debug level with the caller's location and returned
// as-is; nothing is retried here.
func RequestLLM(cli Client, ctx context.Context, req Request, conversationID string) (Response, error) {
	resp, err := cli.Chat(ctx, req)
	if err != nil {
		pc, f, _, ok := runtime.Caller(1)
		if ok {
			funcName := runtime.FuncForPC(pc).Name()
			misc.Debug("API ERR: %s. from: %s-%s", err.Error(), f, funcName)
		} else {
			misc.Debug("API ERR: %s", err.Error())
		}
		return resp, err
	}
	AddConversationTokenUsage(conversationID, resp.Usage)
	return resp, nil
}

// ResponseToMessage converts a Response into an assistant Message,
// preserving any tool calls.
func ResponseToMessage(resp Response) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   resp.Content,
		ToolCalls: resp.ToolCalls,
	}
}
