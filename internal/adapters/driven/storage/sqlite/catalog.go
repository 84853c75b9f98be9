package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// movieColumns is the full column list in scan order. The column names
// mirror the IMDb Top-1000 CSV headers the table is built from.
const movieColumns = `
	Series_Title,
	COALESCE(Released_Year, ''),
	COALESCE(Genre, ''),
	COALESCE(IMDB_Rating, 0),
	COALESCE(Director, ''),
	COALESCE(Star1, ''),
	COALESCE(Star2, ''),
	COALESCE(Star3, ''),
	COALESCE(Star4, ''),
	COALESCE(Overview, '')`

// CatalogStore reads the movie catalog from a SQLite database file.
//
// The database may legitimately not exist (the user has not run ingest
// yet), and it may appear later in the process lifetime, so availability
// is checked at call time rather than at construction. A missing file maps
// to domain.ErrCatalogUnavailable.
type CatalogStore struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

// NewCatalogStore creates a catalog store over the given database path.
// The file is not required to exist.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// Path returns the database file path.
func (s *CatalogStore) Path() string {
	return s.path
}

// Close closes the database connection if one was opened.
func (s *CatalogStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// conn returns the open database handle, opening it on first use.
// The existence check comes first: sql.Open would happily create an empty
// database file, which must read as "unavailable", not "empty catalog".
func (s *CatalogStore) conn() (*sql.DB, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, s.path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		db, err := sql.Open("sqlite", s.path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
		if err != nil {
			return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrCatalogUnavailable, s.path, err)
		}
		s.db = db
	}
	return s.db, nil
}

// All returns every catalog record in table order.
func (s *CatalogStore) All(ctx context.Context) ([]domain.Movie, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT `+movieColumns+` FROM movies`)
	if err != nil {
		return nil, fmt.Errorf("querying all movies: %w", err)
	}
	defer rows.Close()

	var movies []domain.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movies: %w", err)
	}
	return movies, nil
}

// FindByTitle returns the first record whose title contains the substring,
// case-insensitively.
func (s *CatalogStore) FindByTitle(ctx context.Context, substr string) (*domain.Movie, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE lower(Series_Title) LIKE ? LIMIT 1`,
		"%"+substr+"%",
	)
	return scanMovieRow(row)
}

// GetByTitle returns the record with the exact stored title.
func (s *CatalogStore) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		`SELECT `+movieColumns+` FROM movies WHERE Series_Title = ? LIMIT 1`,
		title,
	)
	return scanMovieRow(row)
}

// FindByActor returns records featuring the actor in any cast slot,
// sorted by rating descending.
func (s *CatalogStore) FindByActor(ctx context.Context, actor string, limit int) ([]domain.Movie, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	pattern := "%" + actor + "%"
	rows, err := db.QueryContext(ctx,
		`SELECT `+movieColumns+` FROM movies
		WHERE lower(COALESCE(Star1, '')) LIKE ?
		   OR lower(COALESCE(Star2, '')) LIKE ?
		   OR lower(COALESCE(Star3, '')) LIKE ?
		   OR lower(COALESCE(Star4, '')) LIKE ?
		ORDER BY IMDB_Rating DESC
		LIMIT ?`,
		pattern, pattern, pattern, pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying by actor: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

// TopByGenre returns records whose genre contains the substring, sorted by
// rating descending.
func (s *CatalogStore) TopByGenre(ctx context.Context, genre string, limit int) ([]domain.Movie, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT `+movieColumns+` FROM movies
		WHERE lower(COALESCE(Genre, '')) LIKE ?
		ORDER BY IMDB_Rating DESC
		LIMIT ?`,
		"%"+genre+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying by genre: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

// SearchSynopsis returns records whose synopsis contains the keyword.
func (s *CatalogStore) SearchSynopsis(ctx context.Context, keyword string, limit int) ([]domain.Movie, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT `+movieColumns+` FROM movies
		WHERE lower(COALESCE(Overview, '')) LIKE ?
		LIMIT ?`,
		"%"+keyword+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying by keyword: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanMovie reads one full movie row into the typed domain structure.
// The validation happens once here, at the boundary.
func scanMovie(sc scanner) (*domain.Movie, error) {
	var m domain.Movie
	var stars [4]string
	if err := sc.Scan(
		&m.Title, &m.Year, &m.Genre, &m.Rating, &m.Director,
		&stars[0], &stars[1], &stars[2], &stars[3], &m.Synopsis,
	); err != nil {
		return nil, fmt.Errorf("scanning movie row: %w", err)
	}
	for _, star := range stars {
		if star != "" {
			m.Cast = append(m.Cast, star)
		}
	}
	return &m, nil
}

func scanMovieRow(row *sql.Row) (*domain.Movie, error) {
	movie, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return movie, nil
}

func collectMovies(rows *sql.Rows) ([]domain.Movie, error) {
	var movies []domain.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movies: %w", err)
	}
	return movies, nil
}
