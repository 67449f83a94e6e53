package llm

import (
	"sync"
	"sync/atomic"
)

// ConversationTokenUsage tracks cumulative token usage for one conversation.
type ConversationTokenUsage struct {
	PromptTokens     atomic.Int64
	CompletionTokens atomic.Int64
	TotalTokens      atomic.Int64
}

// Add accumulates usage from a single API call.
func (u *ConversationTokenUsage) Add(usage Usage) {
	u.PromptTokens.Add(usage.PromptTokens)
	u.CompletionTokens.Add(usage.CompletionTokens)
	u.TotalTokens.Add(usage.TotalTokens)
}

// Snapshot returns the current cumulative usage.
func (u *ConversationTokenUsage) Snapshot() Usage {
	return Usage{
		PromptTokens:     u.PromptTokens.Load(),
		CompletionTokens: u.CompletionTokens.Load(),
		TotalTokens:      u.TotalTokens.Load(),
	}
}

var (
	convUsageMu sync.RWMutex
	convUsage   = make(map[string]*ConversationTokenUsage)
)

// GetConversationTokenUsage returns the usage tracker for a conversation ID,
// creating it on first access.
func GetConversationTokenUsage(conversationID string) *ConversationTokenUsage {
	convUsageMu.RLock()
	u, ok := convUsage[conversationID]
	convUsageMu.RUnlock()
	if ok {
		return u
	}
	convUsageMu.Lock()
	defer convUsageMu.Unlock()
	if u, ok = convUsage[conversationID]; ok {
		return u
	}
	u = &ConversationTokenUsage{}
	convUsage[conversationID] = u
	return u
}

// AddConversationTokenUsage accumulates usage for a conversation.
func AddConversationTokenUsage(conversationID string, usage Usage) {
	if usage.TotalTokens <= 0 || conversationID == "" {
		return
	}
	GetConversationTokenUsage(conversationID).Add(usage)
}
