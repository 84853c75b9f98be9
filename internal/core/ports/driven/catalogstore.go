package driven

import (
	"context"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
)

// CatalogStore provides read access to the movie catalog.
//
// The backing database is built once by the ingest command and treated as
// static for the lifetime of the process. Absence of the database is a normal
// condition: every method returns domain.ErrCatalogUnavailable (possibly
// wrapped) and callers degrade gracefully.
type CatalogStore interface {
	// All returns every catalog record in retrieval order.
	// Used by the similarity index to build its in-memory cache.
	All(ctx context.Context) ([]domain.Movie, error)

	// FindByTitle returns the first record whose title contains the given
	// substring, case-insensitively. Returns domain.ErrNotFound on miss.
	FindByTitle(ctx context.Context, substr string) (*domain.Movie, error)

	// GetByTitle returns the record with the exact title, as stored.
	// Used to re-fetch a fuzzy-match winner. Returns domain.ErrNotFound on miss.
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)

	// FindByActor returns records featuring the actor in any of the four
	// cast slots (case-insensitive substring), sorted by rating descending,
	// capped at limit. An empty result is not an error.
	FindByActor(ctx context.Context, actor string, limit int) ([]domain.Movie, error)

	// TopByGenre returns records whose genre contains the given substring,
	// sorted by rating descending, capped at limit.
	TopByGenre(ctx context.Context, genre string, limit int) ([]domain.Movie, error)

	// SearchSynopsis returns records whose synopsis contains the keyword,
	// capped at limit.
	SearchSynopsis(ctx context.Context, keyword string, limit int) ([]domain.Movie, error)

	// Close releases resources.
	Close() error
}
