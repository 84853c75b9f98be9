package sqlite

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/custodia-labs/kinoman-cli/internal/logger"
)

// ingestColumns are the CSV headers carried into the database. The source
// dataset (IMDb Top 1000) has more columns; the rest are ignored.
var ingestColumns = []string{
	"Series_Title",
	"Released_Year",
	"Genre",
	"IMDB_Rating",
	"Overview",
	"Director",
	"Star1",
	"Star2",
	"Star3",
	"Star4",
}

const createMoviesTable = `
CREATE TABLE movies (
	Series_Title TEXT NOT NULL,
	Released_Year TEXT,
	Genre TEXT,
	IMDB_Rating REAL,
	Overview TEXT,
	Director TEXT,
	Star1 TEXT,
	Star2 TEXT,
	Star3 TEXT,
	Star4 TEXT
)`

// Ingest builds the catalog database from a CSV dataset. An existing
// movies table is replaced, so ingest can be re-run on dataset updates.
// Returns the number of rows loaded.
func Ingest(ctx context.Context, csvPath, dbPath string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("reading dataset header: %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return 0, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return 0, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS movies`); err != nil {
		return 0, fmt.Errorf("dropping old table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, createMoviesTable); err != nil {
		return 0, fmt.Errorf("creating table: %w", err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ingestColumns)), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO movies (%s) VALUES (%s)`,
		strings.Join(ingestColumns, ", "), placeholders,
	))
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("reading dataset row %d: %w", count+1, err)
		}

		args := make([]any, 0, len(ingestColumns))
		for _, col := range ingestColumns {
			args = append(args, fieldValue(record, index[col], col))
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("inserting row %d: %w", count+1, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing ingest: %w", err)
	}

	logger.Info("Ingested %d movies from %s into %s", count, csvPath, dbPath)
	return count, nil
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range ingestColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("dataset is missing column %q", col)
		}
	}
	return index, nil
}

// fieldValue converts one CSV cell into its typed column value. The rating
// column becomes a float; unparsable or missing cells become NULL.
func fieldValue(record []string, pos int, col string) any {
	if pos >= len(record) {
		return nil
	}
	value := strings.TrimSpace(record[pos])
	if value == "" {
		return nil
	}
	if col == "IMDB_Rating" {
		rating, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil
		}
		return rating
	}
	return value
}
