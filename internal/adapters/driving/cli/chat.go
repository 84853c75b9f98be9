package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
	"github.com/custodia-labs/kinoman-cli/internal/core/services"
)

// Chat styles.
var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	morseStyle  = lipgloss.NewStyle().Faint(true)
	agentStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("105"))
	userStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// exitWords end the chat session.
var exitWords = map[string]bool{
	"/exit": true,
	"выход": true,
	"пока":  true,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat with the movie agent",
	Long: `Start an interactive conversation with Kinoman.

The agent answers questions about movies from the local IMDb Top 1000
catalog, falls back to OMDb for other titles when a key is configured,
and remembers your name and taste between sessions.

Requires an OpenAI API key; set it with 'kinoman settings openai-key'
or the OPENAI_API_KEY environment variable.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	agent := services.NewAgentService(llmService, memoryService, agentTools())

	printBanner(cmd)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cmd.Print("\n" + userStyle.Render("Ты:") + " ")
		if !scanner.Scan() {
			cmd.Println()
			cmd.Println(agentStyle.Render("Киноманьяк:") + " " + agent.Farewell())
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if exitWords[strings.ToLower(input)] {
			cmd.Println(agentStyle.Render("Киноманьяк:") + " " + agent.Farewell())
			return nil
		}

		answer, err := agent.Respond(cmd.Context(), input)
		if err != nil {
			if errors.Is(err, domain.ErrLLMUnavailable) {
				cmd.Println(errorStyle.Render(
					"OpenAI API ключ не настроен. Выполни 'kinoman settings openai-key' " +
						"или задай переменную OPENAI_API_KEY."))
				continue
			}
			cmd.Println(errorStyle.Render(fmt.Sprintf("Ошибка: %v", err)))
			continue
		}
		cmd.Println(agentStyle.Render("Киноманьяк:") + " " + answer)
	}
}

func printBanner(cmd *cobra.Command) {
	cmd.Println()
	cmd.Println(" 🛰️ Радиосигнал получен...")
	cmd.Println(morseStyle.Render(".--. .-. .. . --, .--. .-. .. . --"))
	cmd.Println()
	cmd.Println(bannerStyle.Render("🎬 «Киноманьяк» выходит на связь!"))
	cmd.Println("Я — Киноманьяк, твой интеллектуальный ассистент по кино.")
	cmd.Println()
	cmd.Println("Я помогу тебе выбрать фильм, понять его рейтинг, " +
		"узнать больше об актёрах и подобрать персональные рекомендации.")
	cmd.Println()
	cmd.Println("Задай свой вопрос — и мы отправимся в путешествие по кино-вселенной 🚀")
	cmd.Println("Для завершения сеанса: /exit")
}
