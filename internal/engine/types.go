package engine

import (
	"context"
	"fmt"
)

// MessageRole represents the role of a chat message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is the provider-agnostic message we pass around.
type ChatMessage struct {
	Role    MessageRole // Role of the message sender
	Content string      // Message content
}

// Validate checks if the ChatMessage is valid.
func (m ChatMessage) Validate() error {
	switch m.Role {
	case RoleSystem, RoleUser, RoleAssistant:
		return nil
	default:
		return fmt.Errorf("invalid message role: %s", m.Role)
	}
}

// Usage holds token accounting returned by providers.
type Usage struct {
	Prompt     int
	Completion int
	Total      int
}

// ToolCall represents a tool invocation the model requested through the
// ReAct grammar: a tool name plus a single string argument.
type ToolCall struct {
	Name  string
	Input string
}

// LLMResponse is a normalized result of one chat call.
type LLMResponse struct {
	Content      string // raw assistant text, parsed by the ReAct grammar
	Model        string // model name reported by the provider
	Usage        Usage
	FinishReason string // "stop" | "length" | "content_filter"
}

// LLMClient abstracts your chosen SDK (Azure OpenAI, Anthropic, etc.)
type LLMClient interface {
	Chat(ctx context.Context, model string, messages []ChatMessage, opts ChatOptions) (LLMResponse, error)
}

// ChatOptions keeps knobs you'll forward to the SDK.
type ChatOptions struct {
	Temperature     float32
	MaxOutputTokens int
	Stop            []string     // stop sequences; the loop halts the model before it fabricates observations
	Retry           *RetryPolicy // optional retry configuration (nil = use defaults)
}

// Response is the terminal result of one agent run. Every failure class
// (missing configuration, retries exhausted, step limit) is folded into it;
// Agent.Run never surfaces a Go error to the caller.
type Response struct {
	Success bool   `json:"success"`
	Answer  string `json:"response,omitempty"`
	Error   string `json:"error,omitempty"`
}
