package services

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driven"
)

// fixtureMovies is a small slice of the real dataset, enough to exercise
// matching, ordering and rendering.
func fixtureMovies() []domain.Movie {
	return []domain.Movie{
		{
			Title:    "Inception",
			Year:     "2010",
			Genre:    "Action, Adventure, Sci-Fi",
			Rating:   8.8,
			Director: "Christopher Nolan",
			Cast:     []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt", "Elliot Page", "Ken Watanabe"},
			Synopsis: "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		},
		{
			Title:    "The Dark Knight",
			Year:     "2008",
			Genre:    "Action, Crime, Drama",
			Rating:   9.0,
			Director: "Christopher Nolan",
			Cast:     []string{"Christian Bale", "Heath Ledger", "Aaron Eckhart", "Michael Caine"},
			Synopsis: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		},
		{
			Title:    "The Matrix",
			Year:     "1999",
			Genre:    "Action, Sci-Fi",
			Rating:   8.7,
			Director: "Lana Wachowski",
			Cast:     []string{"Keanu Reeves", "Laurence Fishburne", "Carrie-Anne Moss", "Hugo Weaving"},
			Synopsis: "When a beautiful stranger leads computer hacker Neo to a forbidding underworld, he discovers the shocking truth--the life he knows is the elaborate deception of an evil cyber-intelligence.",
		},
		{
			Title:    "Forrest Gump",
			Year:     "1994",
			Genre:    "Drama, Romance",
			Rating:   8.8,
			Director: "Robert Zemeckis",
			Cast:     []string{"Tom Hanks", "Robin Wright", "Gary Sinise", "Sally Field"},
			Synopsis: "The presidencies of Kennedy and Johnson, the Vietnam War, the Watergate scandal and other historical events unfold from the perspective of an Alabama man with an IQ of 75, whose only desire is to be reunited with his childhood sweetheart.",
		},
	}
}

// mockCatalogStore is a hand-written driven.CatalogStore with call counting
// and switchable availability.
type mockCatalogStore struct {
	mu          sync.Mutex
	movies      []domain.Movie
	unavailable bool
	allCalls    int
}

var _ driven.CatalogStore = (*mockCatalogStore)(nil)

func newMockCatalog(movies []domain.Movie) *mockCatalogStore {
	return &mockCatalogStore{movies: movies}
}

func (m *mockCatalogStore) All(_ context.Context) ([]domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.allCalls++
	if m.unavailable {
		return nil, domain.ErrCatalogUnavailable
	}
	out := make([]domain.Movie, len(m.movies))
	copy(out, m.movies)
	return out, nil
}

func (m *mockCatalogStore) FindByTitle(_ context.Context, substr string) (*domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return nil, domain.ErrCatalogUnavailable
	}
	substr = strings.ToLower(substr)
	for i := range m.movies {
		if strings.Contains(strings.ToLower(m.movies[i].Title), substr) {
			mv := m.movies[i]
			return &mv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogStore) GetByTitle(_ context.Context, title string) (*domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return nil, domain.ErrCatalogUnavailable
	}
	for i := range m.movies {
		if m.movies[i].Title == title {
			mv := m.movies[i]
			return &mv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogStore) FindByActor(_ context.Context, actor string, limit int) ([]domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return nil, domain.ErrCatalogUnavailable
	}
	actor = strings.ToLower(actor)
	var out []domain.Movie
	for _, mv := range m.movies {
		for _, star := range mv.Cast {
			if strings.Contains(strings.ToLower(star), actor) {
				out = append(out, mv)
				break
			}
		}
	}
	return clipMovies(out, limit), nil
}

func (m *mockCatalogStore) TopByGenre(_ context.Context, genre string, limit int) ([]domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return nil, domain.ErrCatalogUnavailable
	}
	genre = strings.ToLower(genre)
	var out []domain.Movie
	for _, mv := range m.movies {
		if strings.Contains(strings.ToLower(mv.Genre), genre) {
			out = append(out, mv)
		}
	}
	return clipMovies(out, limit), nil
}

func (m *mockCatalogStore) SearchSynopsis(_ context.Context, keyword string, limit int) ([]domain.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return nil, domain.ErrCatalogUnavailable
	}
	keyword = strings.ToLower(keyword)
	var out []domain.Movie
	for _, mv := range m.movies {
		if strings.Contains(strings.ToLower(mv.Synopsis), keyword) {
			out = append(out, mv)
		}
	}
	return clipMovies(out, limit), nil
}

func (m *mockCatalogStore) Close() error { return nil }

func clipMovies(movies []domain.Movie, limit int) []domain.Movie {
	if limit > 0 && len(movies) > limit {
		return movies[:limit]
	}
	return movies
}

// mockMemoryStore is an in-memory driven.MemoryStore.
type mockMemoryStore struct {
	mu       sync.Mutex
	snapshot *driven.MemorySnapshot
	saves    int
}

var _ driven.MemoryStore = (*mockMemoryStore)(nil)

func newMockMemoryStore() *mockMemoryStore {
	return &mockMemoryStore{}
}

func (s *mockMemoryStore) Load() *driven.MemorySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return &driven.MemorySnapshot{}
	}
	return s.snapshot
}

func (s *mockMemoryStore) Save(snapshot *driven.MemorySnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
	s.saves++
	return nil
}

func (s *mockMemoryStore) Path() string { return "mock://memory" }

// mockLLM replays a scripted sequence of results and records every request.
type mockLLM struct {
	mu       sync.Mutex
	results  []*driven.ChatResult
	err      error
	calls    int
	requests [][]driven.ChatMessage
}

var _ driven.LLMService = (*mockLLM)(nil)

func (m *mockLLM) ChatWithTools(
	_ context.Context,
	messages []driven.ChatMessage,
	_ []driven.ToolSpec,
	_ driven.ChatOptions,
) (*driven.ChatResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]driven.ChatMessage, len(messages))
	copy(copied, messages)
	m.requests = append(m.requests, copied)

	if m.err != nil {
		return nil, m.err
	}

	idx := m.calls
	m.calls++
	if idx >= len(m.results) {
		// Script exhausted: keep replaying the last result.
		idx = len(m.results) - 1
	}
	return m.results[idx], nil
}

func (m *mockLLM) ModelName() string            { return "mock-model" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }
