package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
)

func seedStore() *CatalogStore {
	return NewCatalogStore([]domain.Movie{
		{Title: "Inception", Genre: "Action, Sci-Fi", Rating: 8.8, Cast: []string{"Leonardo DiCaprio"}, Synopsis: "A thief who steals corporate secrets through dream-sharing technology."},
		{Title: "The Dark Knight", Genre: "Action, Crime, Drama", Rating: 9.0, Cast: []string{"Christian Bale", "Heath Ledger"}, Synopsis: "Batman faces the Joker."},
		{Title: "Forrest Gump", Genre: "Drama, Romance", Rating: 8.8, Cast: []string{"Tom Hanks"}, Synopsis: "The presidencies of Kennedy and Johnson through the eyes of an Alabama man."},
	})
}

func TestCatalogStore_All_ReturnsCopy(t *testing.T) {
	store := seedStore()

	movies, err := store.All(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 3)

	movies[0].Title = "mutated"
	again, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Inception", again[0].Title)
}

func TestCatalogStore_FindByTitle_SubstringCaseInsensitive(t *testing.T) {
	store := seedStore()

	movie, err := store.FindByTitle(context.Background(), "dark knight")
	require.NoError(t, err)
	assert.Equal(t, "The Dark Knight", movie.Title)

	_, err = store.FindByTitle(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogStore_GetByTitle_ExactOnly(t *testing.T) {
	store := seedStore()

	movie, err := store.GetByTitle(context.Background(), "Inception")
	require.NoError(t, err)
	assert.Equal(t, "Inception", movie.Title)

	_, err = store.GetByTitle(context.Background(), "inception")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogStore_TopByGenre_RatingDescendingWithLimit(t *testing.T) {
	store := seedStore()

	movies, err := store.TopByGenre(context.Background(), "action", 5)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "The Dark Knight", movies[0].Title)

	limited, err := store.TopByGenre(context.Background(), "action", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCatalogStore_FindByActor(t *testing.T) {
	store := seedStore()

	movies, err := store.FindByActor(context.Background(), "tom hanks", 5)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Forrest Gump", movies[0].Title)
}

func TestCatalogStore_SearchSynopsis(t *testing.T) {
	store := seedStore()

	movies, err := store.SearchSynopsis(context.Background(), "joker", 5)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "The Dark Knight", movies[0].Title)
}

func TestCatalogStore_SetUnavailable(t *testing.T) {
	store := seedStore()
	store.SetUnavailable(true)

	_, err := store.All(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)

	store.SetUnavailable(false)
	_, err = store.All(context.Background())
	assert.NoError(t, err)
}
