package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kinoman-cli/internal/adapters/driven/storage/sqlite"
)

var ingestCSVPath string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Build the local movie database from the Kaggle CSV dataset",
	Long: `Build the SQLite movie database from the IMDb Top 1000 CSV dataset.

Download the dataset from Kaggle (IMDb Top 1000) and place it at
data/imdb_top_1000.csv, then run this command. Re-running replaces the
existing database.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestCSVPath, "csv", defaultCSVPath, "path to the CSV dataset")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(ingestCSVPath); err != nil {
		return fmt.Errorf("CSV файл не найден: %s (скачай датасет IMDb Top 1000 с Kaggle)", ingestCSVPath)
	}

	dbPath := catalogStore.Path()
	cmd.Printf("📥 Читаю CSV: %s\n", ingestCSVPath)
	cmd.Printf("🗄 Создаю SQLite базу: %s\n", dbPath)

	count, err := sqlite.Ingest(cmd.Context(), ingestCSVPath, dbPath)
	if err != nil {
		return fmt.Errorf("building database: %w", err)
	}

	cmd.Printf("✅ Загружено %d фильмов в таблицу 'movies' (%s)\n", count, dbPath)
	return nil
}
