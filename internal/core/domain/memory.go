package domain

// Conversation roles stored in memory. Tool messages are kept only in the
// in-flight LLM context and never reach the persistent history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single remembered conversation turn.
type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Profile holds what the agent has learned about the user from conversation.
type Profile struct {
	Name      string   `json:"name,omitempty"`
	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Directors []string `json:"directors"`
	Movies    []string `json:"movies"`
}
