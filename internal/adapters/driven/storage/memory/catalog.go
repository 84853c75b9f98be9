// Package memory provides an in-memory catalog store, used in tests and
// wherever a fixed movie list needs to stand in for the SQLite catalog.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore holds the catalog in memory. It mirrors the lookup
// semantics of the SQLite store: case-insensitive substring matching and
// rating-descending ordering for actor and genre queries.
type CatalogStore struct {
	mu          sync.RWMutex
	movies      []domain.Movie
	unavailable bool
}

// NewCatalogStore creates a store seeded with the given movies.
func NewCatalogStore(movies []domain.Movie) *CatalogStore {
	return &CatalogStore{movies: movies}
}

// SetUnavailable makes every subsequent call fail with
// domain.ErrCatalogUnavailable, simulating a missing database file.
func (s *CatalogStore) SetUnavailable(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = v
}

func (s *CatalogStore) check() error {
	if s.unavailable {
		return domain.ErrCatalogUnavailable
	}
	return nil
}

// All returns every movie in insertion order.
func (s *CatalogStore) All(_ context.Context) ([]domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	out := make([]domain.Movie, len(s.movies))
	copy(out, s.movies)
	return out, nil
}

// FindByTitle returns the first movie whose title contains the substring.
func (s *CatalogStore) FindByTitle(_ context.Context, substr string) (*domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	substr = strings.ToLower(substr)
	for i := range s.movies {
		if strings.Contains(strings.ToLower(s.movies[i].Title), substr) {
			m := s.movies[i]
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByTitle returns the movie with the exact stored title.
func (s *CatalogStore) GetByTitle(_ context.Context, title string) (*domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	for i := range s.movies {
		if s.movies[i].Title == title {
			m := s.movies[i]
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

// FindByActor returns movies featuring the actor, best-rated first.
func (s *CatalogStore) FindByActor(_ context.Context, actor string, limit int) ([]domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	actor = strings.ToLower(actor)
	var out []domain.Movie
	for _, m := range s.movies {
		for _, star := range m.Cast {
			if strings.Contains(strings.ToLower(star), actor) {
				out = append(out, m)
				break
			}
		}
	}
	return topRated(out, limit), nil
}

// TopByGenre returns movies whose genre contains the substring, best-rated
// first.
func (s *CatalogStore) TopByGenre(_ context.Context, genre string, limit int) ([]domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	genre = strings.ToLower(genre)
	var out []domain.Movie
	for _, m := range s.movies {
		if strings.Contains(strings.ToLower(m.Genre), genre) {
			out = append(out, m)
		}
	}
	return topRated(out, limit), nil
}

// SearchSynopsis returns movies whose synopsis contains the keyword.
func (s *CatalogStore) SearchSynopsis(_ context.Context, keyword string, limit int) ([]domain.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(); err != nil {
		return nil, err
	}
	keyword = strings.ToLower(keyword)
	var out []domain.Movie
	for _, m := range s.movies {
		if strings.Contains(strings.ToLower(m.Synopsis), keyword) {
			out = append(out, m)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *CatalogStore) Close() error {
	return nil
}

func topRated(movies []domain.Movie, limit int) []domain.Movie {
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Rating > movies[j].Rating
	})
	if limit > 0 && len(movies) > limit {
		movies = movies[:limit]
	}
	return movies
}
