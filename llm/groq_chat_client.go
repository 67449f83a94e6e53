package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// GroqChatClient implements Client using the official openai/openai-go SDK's
// Chat Completions API (/v1/chat/completions), which Groq exposes verbatim.
type GroqChatClient struct {
	cli openai.Client
}

// NewGroqChatClient creates a client for the Chat Completions API. Callers
// supply credentials and base URL through request options.
func NewGroqChatClient(opts ...option.RequestOption) *GroqChatClient {
	return &GroqChatClient{cli: openai.NewClient(opts...)}
}

// Chat implements Client.Chat. Requests are always non-streaming; zero-valued
// sampling fields fall back to the package defaults.
func (c *GroqChatClient) Chat(ctx context.Context, req Request) (Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(req.Model),
		Messages: messagesToChatParams(req.Messages),
	}
	if req.Model == "" {
		params.Model = shared.ChatModel(DefaultModel)
	}

	temp := req.Temperature
	if temp == 0 {
		temp = DefaultTemperature
	}
	params.Temperature = openai.Float(temp)

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}
	params.MaxTokens = openai.Int(maxTokens)

	topP := req.TopP
	if topP == 0 {
		topP = DefaultTopP
	}
	params.TopP = openai.Float(topP)

	if len(req.Tools) > 0 {
		params.Tools = toolDefsToChatTools(req.Tools)
	}
	if req.ToolChoice != "" {
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String(req.ToolChoice),
		}
	}

	resp, err := c.cli.Chat.Completions.New(ctx, params)
	if err != nil {
		return Response{}, err
	}
	return fromChatCompletion(resp)
}

// --- conversion helpers: llm types → Chat Completions params ---

func messagesToChatParams(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(m.Content),
					},
				},
			})
		case RoleUser:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(m.Content),
					},
				},
			})
		case RoleAssistant:
			asst := &openai.ChatCompletionAssistantMessageParam{}
			// Content stays null only for an assistant message that is
			// waiting on tool results.
			if m.Content != "" || len(m.ToolCalls) == 0 {
				asst.Content = openai.ChatCompletionAssistantMessageParamContentUnion{
					OfString: openai.String(m.Content),
				}
			}
			for _, tc := range m.ToolCalls {
				asst.ToolCalls = append(asst.ToolCalls, openai.ChatCompletionMessageToolCallUnionParam{
					OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
						ID: tc.ID,
						Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
							Name:      tc.Name,
							Arguments: tc.Arguments,
						},
					},
				})
			}
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfAssistant: asst,
			})
		case RoleTool:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfTool: &openai.ChatCompletionToolMessageParam{
					ToolCallID: m.ToolCallID,
					Content: openai.ChatCompletionToolMessageParamContentUnion{
						OfString: openai.String(m.Content),
					},
				},
			})
		}
	}
	return out
}

func toolDefsToChatTools(defs []ToolDef) []openai.ChatCompletionToolUnionParam {
	out := make([]openai.ChatCompletionToolUnionParam, len(defs))
	for i, d := range defs {
		out[i] = openai.ChatCompletionToolUnionParam{
			OfFunction: &openai.ChatCompletionFunctionToolParam{
				Function: shared.FunctionDefinitionParam{
					Name:        d.Name,
					Description: openai.String(d.Description),
					Parameters:  shared.FunctionParameters(d.Parameters),
				},
			},
		}
	}
	return out
}

// --- conversion helpers: Chat Completions output → llm types ---

func fromChatCompletion(resp *openai.ChatCompletion) (Response, error) {
	if len(resp.Choices) == 0 {
		return Response{}, fmt.Errorf("empty response (no choices)")
	}
	msg := resp.Choices[0].Message
	r := Response{Content: msg.Content}
	if resp.Usage.TotalTokens > 0 {
		r.Usage = Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	for _, tc := range msg.ToolCalls {
		if tc.Type == "function" {
			fn := tc.AsFunction()
			r.ToolCalls = append(r.ToolCalls, ToolCall{
				ID:        fn.ID,
				Name:      fn.Function.Name,
				Arguments: fn.Function.Arguments,
			})
		}
	}
	return r, nil
}
