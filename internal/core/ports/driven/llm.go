package driven

import "context"

// LLMService provides tool-calling chat completions for the agent loop.
//
// Implementations may include:
//   - OpenAI (GPT-4o family)
//   - any OpenAI-compatible API (configurable base URL)
type LLMService interface {
	// ChatWithTools sends a conversation plus the available tool
	// declarations and returns either assistant text or tool calls.
	ChatWithTools(ctx context.Context, messages []ChatMessage, tools []ToolSpec, opts ChatOptions) (*ChatResult, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ToolSpec declares a callable tool to the model.
type ToolSpec struct {
	// Name is the tool identifier the model uses in tool calls.
	Name string

	// Description tells the model what the tool does.
	Description string

	// Parameters is a JSON-schema object describing the arguments.
	Parameters map[string]any
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", "assistant", or "tool".
	Role string

	// Content is the message text. Empty for assistant messages that
	// carry only tool calls.
	Content string

	// ToolCalls holds the calls requested by an assistant message.
	ToolCalls []ToolCall

	// ToolCallID links a tool-role message to the call it answers.
	ToolCallID string

	// Name is the tool name on tool-role messages.
	Name string
}

// ToolCall is a single tool invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // raw JSON object
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}

// ChatResult is the model's reply: final text, tool calls, or both.
type ChatResult struct {
	Content   string
	ToolCalls []ToolCall
}
