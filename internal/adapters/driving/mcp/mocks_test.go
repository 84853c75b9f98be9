package mcp

import (
	"context"
	"fmt"

	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driving"
)

// mockMovieTools records the last call and echoes its parameters so tests
// can assert the handler wired the right method.
type mockMovieTools struct {
	lastMethod string
	lastQuery  string
	lastLimit  int
}

var _ driving.MovieTools = (*mockMovieTools)(nil)

func (m *mockMovieTools) MovieInfo(_ context.Context, title string) string {
	m.lastMethod, m.lastQuery = "MovieInfo", title
	return fmt.Sprintf("info:%s", title)
}

func (m *mockMovieTools) MovieRating(_ context.Context, title string) string {
	m.lastMethod, m.lastQuery = "MovieRating", title
	return fmt.Sprintf("rating:%s", title)
}

func (m *mockMovieTools) MoviesWithActor(_ context.Context, actor string, limit int) string {
	m.lastMethod, m.lastQuery, m.lastLimit = "MoviesWithActor", actor, limit
	return fmt.Sprintf("actor:%s:%d", actor, limit)
}

func (m *mockMovieTools) TopByGenre(_ context.Context, genre string, limit int) string {
	m.lastMethod, m.lastQuery, m.lastLimit = "TopByGenre", genre, limit
	return fmt.Sprintf("genre:%s:%d", genre, limit)
}

func (m *mockMovieTools) SearchByKeyword(_ context.Context, keyword string, limit int) string {
	m.lastMethod, m.lastQuery, m.lastLimit = "SearchByKeyword", keyword, limit
	return fmt.Sprintf("keyword:%s:%d", keyword, limit)
}
