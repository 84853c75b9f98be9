package driving

import "context"

// Agent is the conversational movie agent consumed by the chat command.
type Agent interface {
	// Respond processes one user message: memory update, direct-memory
	// answers, and the multi-step tool-calling loop. The returned string
	// is the final formatted reply.
	Respond(ctx context.Context, userInput string) (string, error)

	// Farewell formats the goodbye message and records it in memory.
	Farewell() string
}
