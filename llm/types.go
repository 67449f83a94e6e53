package llm

import "encoding/json"

// Role constants — provider-agnostic.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Tool choice modes for a chat request. Empty means "let the API default".
const (
	ToolChoiceAuto = "auto"
	ToolChoiceNone = "none"
)

// Default request parameters for the coding assistant.
const (
	DefaultModel       = "llama3-8b-8192"
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1024
	DefaultTopP        = 1.0
)

// ToolCall represents a single function call requested by the model.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Message is the universal chat message used throughout the project.
// Content is empty (null on the wire) only for assistant messages that
// carry pending tool calls. Name is set on tool-result messages.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// MarshalJSON keeps the wire representation stable for token counting and
// debug dumps.
func (m Message) MarshalJSON() ([]byte, error) {
	type Alias Message
	return json.Marshal((Alias)(m))
}

// ToolDef describes a function tool that can be passed to the model.
type ToolDef struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// Usage carries token consumption from a single LLM API call.
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// Request is a single chat-completion request. Zero-valued sampling fields
// fall back to the package defaults; requests are always non-streaming.
type Request struct {
	Model       string
	Messages    []Message
	Tools       []ToolDef
	ToolChoice  string
	Temperature float64
	MaxTokens   int64
	TopP        float64
}

// Response is the provider-agnostic result of a chat completion call.
type Response struct {
	Content   string     // assistant text content
	ToolCalls []ToolCall // tool calls requested by the model
	Usage     Usage      // token usage for this call
}
