package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kinoman-cli/internal/logger"
)

// Ensure AgentService implements the interface.
var _ driving.Agent = (*AgentService)(nil)

const (
	// maxAgentSteps bounds the tool-calling loop for one user message.
	maxAgentSteps = 8

	// historyWindow is how many past turns are replayed to the model.
	historyWindow = 12

	// chatTemperature keeps tool selection and answers near-deterministic.
	chatTemperature = 0.2
)

// AgentService runs the multi-step tool-calling conversation loop.
type AgentService struct {
	llm    driven.LLMService
	memory *MemoryService
	tools  []AgentTool
	byName map[string]*AgentTool
	specs  []driven.ToolSpec
}

// NewAgentService creates the agent over an LLM, the conversation memory
// and a tool registry. The LLM may be nil; Respond then fails with
// domain.ErrLLMUnavailable unless memory can answer directly.
func NewAgentService(llm driven.LLMService, memory *MemoryService, tools []AgentTool) *AgentService {
	a := &AgentService{
		llm:    llm,
		memory: memory,
		tools:  tools,
		byName: make(map[string]*AgentTool, len(tools)),
		specs:  make([]driven.ToolSpec, 0, len(tools)),
	}
	for i := range tools {
		a.byName[tools[i].Name] = &tools[i]
		a.specs = append(a.specs, tools[i].Spec())
	}
	return a
}

// Respond processes one user message end to end.
func (a *AgentService) Respond(ctx context.Context, userInput string) (string, error) {
	userInput = strings.TrimSpace(userInput)

	a.memory.Add(domain.RoleUser, userInput)
	a.memory.UpdateFromUserText(userInput)

	// Profile questions are answered straight from memory, no LLM round-trip.
	if direct, ok := a.memory.DirectAnswer(userInput); ok {
		logger.Debug("Direct memory answer for %q", userInput)
		return a.finish(direct), nil
	}

	if a.llm == nil {
		return "", domain.ErrLLMUnavailable
	}

	messages := a.buildMessages(userInput)

	for step := 0; step < maxAgentSteps; step++ {
		logger.Debug("Agent step %d: %d messages", step, len(messages))

		result, err := a.llm.ChatWithTools(ctx, messages, a.specs, driven.ChatOptions{
			Temperature: chatTemperature,
		})
		if err != nil {
			return "", fmt.Errorf("agent step %d: %w", step, err)
		}

		// No tool calls means the model produced its final answer.
		if len(result.ToolCalls) == 0 {
			raw := result.Content
			if strings.TrimSpace(raw) == "" {
				raw = "Я не смог сформировать осмысленный ответ."
			}
			return a.finish(raw), nil
		}

		messages = append(messages, driven.ChatMessage{
			Role:      "assistant",
			ToolCalls: result.ToolCalls,
		})

		for _, call := range result.ToolCalls {
			output := a.executeTool(ctx, call)
			// Tool messages feed the in-flight context only; persistent
			// memory keeps user/assistant turns.
			messages = append(messages, driven.ChatMessage{
				Role:       "tool",
				ToolCallID: call.ID,
				Name:       call.Name,
				Content:    output,
			})
		}
	}

	fallback := "Похоже, запрос получился слишком сложным для одного диалога, " +
		"и я достиг лимита шагов рассуждения."
	return a.finish(fallback), nil
}

// Farewell formats the goodbye message and records it in memory.
func (a *AgentService) Farewell() string {
	bye := "🛰️ Связь завершается... \n" +
		"Спасибо за сеанс ✨ \n\n" +
		"Когда захочешь вернуться — я включу передатчик. Я всегда на орбите 🚀 \n" +
		"До следующего сигнала! 👋"
	return a.finish(bye)
}

// finish formats the final answer and records it as an assistant turn.
func (a *AgentService) finish(raw string) string {
	final := formatFinalAnswer(raw)
	a.memory.Add(domain.RoleAssistant, final)
	return final
}

// buildMessages assembles the LLM context: system prompt plus profile block,
// a window of past turns, and the current user input. The current input was
// already appended to memory, so the history window excludes the last entry
// to avoid sending it twice.
func (a *AgentService) buildMessages(userInput string) []driven.ChatMessage {
	system := systemPrompt

	var profileBlock strings.Builder
	name := a.memory.UserName()
	prefs := a.memory.PreferencesText()
	if name != "" || prefs != "" {
		profileBlock.WriteString("\n[Профиль пользователя]\n")
		if name != "" {
			fmt.Fprintf(&profileBlock, "Имя пользователя: %s\n", name)
		}
		if prefs != "" {
			profileBlock.WriteString(prefs + "\n")
		}
	}

	messages := []driven.ChatMessage{
		{Role: "system", Content: system + profileBlock.String()},
	}

	history := a.memory.History()
	if n := len(history); n > 0 {
		history = history[:n-1]
	}
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, msg := range history {
		messages = append(messages, driven.ChatMessage{Role: msg.Role, Content: msg.Content})
	}

	messages = append(messages, driven.ChatMessage{Role: domain.RoleUser, Content: userInput})
	return messages
}

// executeTool runs one tool call. Failures are rendered into the result
// string and fed back to the model; they never abort the loop.
func (a *AgentService) executeTool(ctx context.Context, call driven.ToolCall) string {
	tool, ok := a.byName[call.Name]
	if !ok {
		logger.Warn("Unknown tool requested: %s", call.Name)
		return fmt.Sprintf("[ERROR] Инструмент '%s' не найден.", call.Name)
	}

	args := map[string]any{}
	if raw := strings.TrimSpace(call.Arguments); raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			// Malformed argument JSON degrades to an empty argument set.
			logger.Warn("Tool %s: bad arguments %q: %v", call.Name, raw, err)
			args = map[string]any{}
		}
	}

	logger.Debug("Tool call: %s(%v)", call.Name, args)
	result, err := tool.Handler(ctx, args)
	if err != nil {
		return fmt.Sprintf("[ERROR] Ошибка инструмента '%s': %v", call.Name, err)
	}
	return result
}

// formatFinalAnswer guarantees every reply carries a line prefixed with
// «Пояснение:». Replies that already contain one pass through unchanged;
// empty replies become the internal-error template.
func formatFinalAnswer(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "Я не смог сформировать осмысленный ответ.\n" +
			"Пояснение: Я столкнулся с внутренней ошибкой при обработке запроса."
	}

	if strings.Contains(strings.ToLower(text), "пояснение:") {
		return text
	}

	return text + "\n\n" +
		"Пояснение: Я сформировал этот ответ, опираясь на твой запрос, контекст диалога " +
		"и данные из доступных инструментов и своей памяти, если это было необходимо."
}
