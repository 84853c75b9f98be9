package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure API keys, the OpenAI model, and data paths.

Settings are stored in the kinoman config directory. API keys may also be
provided via the OPENAI_API_KEY and OMDB_API_KEY environment variables;
stored settings take precedence.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsOpenAIKeyCmd = &cobra.Command{
	Use:   "openai-key",
	Short: "Set the OpenAI API key",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return storeSecret(cmd, keyOpenAIAPIKey, "OpenAI")
	},
}

var settingsOMDBKeyCmd = &cobra.Command{
	Use:   "omdb-key",
	Short: "Set the OMDb API key",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return storeSecret(cmd, keyOMDBAPIKey, "OMDb")
	},
}

var settingsModelCmd = &cobra.Command{
	Use:   "model [name]",
	Short: "Set the OpenAI model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configStore.Set(keyOpenAIModel, args[0]); err != nil {
			return fmt.Errorf("saving model: %w", err)
		}
		cmd.Printf("Model set to: %s\n", args[0])
		return nil
	},
}

var settingsDBPathCmd = &cobra.Command{
	Use:   "db-path [path]",
	Short: "Set the movie database location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configStore.Set(keyDBPath, args[0]); err != nil {
			return fmt.Errorf("saving database path: %w", err)
		}
		cmd.Printf("Database path set to: %s\n", args[0])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsOpenAIKeyCmd)
	settingsCmd.AddCommand(settingsOMDBKeyCmd)
	settingsCmd.AddCommand(settingsModelCmd)
	settingsCmd.AddCommand(settingsDBPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[OpenAI]")
	printKeyStatus(cmd, keyOpenAIAPIKey, "OPENAI_API_KEY")
	model := configStore.GetString(keyOpenAIModel)
	if model == "" {
		model = "(default)"
	}
	cmd.Printf("  Model: %s\n", model)
	cmd.Println()

	cmd.Println("[OMDb]")
	printKeyStatus(cmd, keyOMDBAPIKey, "OMDB_API_KEY")
	cmd.Println()

	cmd.Println("[Data]")
	cmd.Printf("  Database: %s\n", catalogStore.Path())
	cmd.Printf("  Memory: %s\n", memoryService.Path())
	cmd.Printf("  Config: %s\n", configStore.Path())

	return nil
}

func printKeyStatus(cmd *cobra.Command, configKey, envVar string) {
	switch {
	case configStore.GetString(configKey) != "":
		cmd.Printf("  API Key: %s\n", maskAPIKey(configStore.GetString(configKey)))
	case os.Getenv(envVar) != "":
		cmd.Printf("  API Key: (from %s)\n", envVar)
	default:
		cmd.Printf("  API Key: (not set)\n")
	}
}

// storeSecret prompts for an API key without echo and persists it.
func storeSecret(cmd *cobra.Command, configKey, label string) error {
	cmd.Printf("Enter %s API key: ", label)
	key := readPassword()
	cmd.Println()
	if key == "" {
		return errors.New("API key must not be empty")
	}

	if err := configStore.Set(configKey, key); err != nil {
		return fmt.Errorf("saving %s API key: %w", label, err)
	}
	cmd.Printf("%s API key saved to %s\n", label, configStore.Path())
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
