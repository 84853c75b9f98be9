// Package cli provides the command-line interface for Kinoman, a
// conversational movie-recommendation agent over the IMDb Top 1000 dataset.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/kinoman-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/kinoman-cli/internal/adapters/driven/llm/openai"
	memoryfile "github.com/custodia-labs/kinoman-cli/internal/adapters/driven/memorystore/file"
	"github.com/custodia-labs/kinoman-cli/internal/adapters/driven/metadata/omdb"
	"github.com/custodia-labs/kinoman-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kinoman-cli/internal/core/services"
	"github.com/custodia-labs/kinoman-cli/internal/logger"
)

// version is set from main via Execute.
var version = "dev"

// Default data locations, relative to the working directory. The dataset
// layout follows the Kaggle IMDb Top 1000 download.
const (
	defaultDBPath  = "data/imdb_top_1000.db"
	defaultCSVPath = "data/imdb_top_1000.csv"
)

// Configuration keys.
const (
	keyOpenAIAPIKey = "openai.api_key"
	keyOpenAIModel  = "openai.model"
	keyOMDBAPIKey   = "omdb.api_key"
	keyDBPath       = "data.db_path"
)

// Services shared by the commands, wired in initServices.
var (
	configStore     driven.ConfigStore
	catalogStore    *sqlite.CatalogStore
	memoryService   *services.MemoryService
	movieTools      driving.MovieTools
	llmService      driven.LLMService
	metadataService driven.MetadataService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "kinoman",
	Short: "Conversational movie recommendation agent",
	Long: `Kinoman is a chat agent for movie lovers. It answers questions about
movies from the IMDb Top 1000 dataset, tolerates typos in titles, remembers
your preferences between sessions, and can reach out to OMDb for movies
outside the local catalog.

Start with 'kinoman ingest' to build the local database, then 'kinoman chat'.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

// Execute runs the root command. Called from main with the build version.
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// initServices wires the adapters and core services before any command runs.
// The LLM and OMDb services are optional: without keys the catalog tools
// still work, and the agent reports what is missing.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	store, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = store

	dbPath := configStore.GetString(keyDBPath)
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	catalogStore = sqlite.NewCatalogStore(dbPath)

	matcher := services.NewTitleMatcher(services.NewTitleIndex(catalogStore))
	catalogService := services.NewCatalogService(catalogStore, matcher)
	movieTools = services.NewMovieToolsService(catalogService)

	memoryStore := memoryfile.NewMemoryStore(filepath.Join(filepath.Dir(configStore.Path()), "memory.json"))
	memoryService = services.NewMemoryService(memoryStore)

	if key := resolveKey(keyOpenAIAPIKey, "OPENAI_API_KEY"); key != "" {
		llm, err := openai.NewLLMService(openai.LLMConfig{
			APIKey: key,
			Model:  configStore.GetString(keyOpenAIModel),
		})
		if err != nil {
			return fmt.Errorf("configuring OpenAI: %w", err)
		}
		llmService = llm
	} else {
		logger.Debug("OpenAI API key not set; chat will be unavailable")
	}

	if key := resolveKey(keyOMDBAPIKey, "OMDB_API_KEY"); key != "" {
		meta, err := omdb.NewMetadataService(omdb.Config{APIKey: key})
		if err != nil {
			return fmt.Errorf("configuring OMDb: %w", err)
		}
		metadataService = meta
	} else {
		logger.Debug("OMDb API key not set; remote metadata tools disabled")
	}

	return nil
}

// resolveKey reads a credential from config, falling back to the environment.
func resolveKey(configKey, envVar string) string {
	if v := configStore.GetString(configKey); v != "" {
		return v
	}
	return os.Getenv(envVar)
}

// agentTools assembles the full tool registry for the chat agent.
func agentTools() []services.AgentTool {
	tools := services.CatalogAgentTools(movieTools)
	return append(tools, services.MetadataAgentTools(metadataService)...)
}
