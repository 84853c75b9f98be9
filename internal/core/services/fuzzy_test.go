package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kinoman-cli/internal/core/domain"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "inception", "inception", 0},
		{"both empty", "", "", 0},
		{"empty left", "", "abc", 3},
		{"empty right", "abc", "", 3},
		{"classic", "kitten", "sitting", 3},
		{"single substitution", "matrix", "matrux", 1},
		{"transposed pair", "inceptoin", "inception", 2},
		{"cyrillic runes", "привет", "привт", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, levenshtein(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestHybridScore_ExactTitle(t *testing.T) {
	entry := indexEntry{
		title:      "Inception",
		normTitle:  "inception",
		searchText: "a thief who steals corporate secrets action sci-fi christopher nolan",
	}

	// Base 1.0 plus one shared token; the title word is absent from the
	// search text, so no metadata bonus.
	score := hybridScore("inception", &entry)
	assert.InDelta(t, 1.1, score, 1e-9)
}

func TestHybridScore_TypoStaysAboveThreshold(t *testing.T) {
	entry := indexEntry{title: "Inception", normTitle: "inception"}

	// Two edits over nine runes: base ~0.778.
	score := hybridScore("inceptoin", &entry)
	assert.Greater(t, score, matchThreshold)
	assert.Less(t, score, 1.0)
}

func TestHybridScore_GarbageBelowThreshold(t *testing.T) {
	entry := indexEntry{title: "Inception", normTitle: "inception"}

	score := hybridScore("xyzxyz", &entry)
	assert.Less(t, score, matchThreshold)
}

func TestHybridScore_TokenOverlapRanksPartialTitles(t *testing.T) {
	query := "dark knight"
	full := indexEntry{title: "The Dark Knight", normTitle: "the dark knight"}
	other := indexEntry{title: "Dark City", normTitle: "dark city"}

	assert.Greater(t, hybridScore(query, &full), hybridScore(query, &other))
	assert.Greater(t, hybridScore(query, &full), matchThreshold)
}

func TestHybridScore_MetadataBonus(t *testing.T) {
	with := indexEntry{
		title:      "Inception",
		normTitle:  "inception",
		searchText: "dream heist thriller nolan",
	}
	without := indexEntry{
		title:     "Inception",
		normTitle: "inception",
	}

	assert.Greater(t, hybridScore("inception dream", &with), hybridScore("inception dream", &without))
}

func TestHybridScore_ClampedAtCeiling(t *testing.T) {
	entry := indexEntry{
		title:      "A B C D E F G H",
		normTitle:  "a b c d e f g h",
		searchText: "a b c d e f g h",
	}

	// Base 1.0 + 8 token bonuses + 8 metadata bonuses would be 2.2.
	score := hybridScore("a b c d e f g h", &entry)
	assert.Equal(t, scoreCeiling, score)
}

func TestHybridScore_DuplicateQueryTokensCountOnce(t *testing.T) {
	entry := indexEntry{title: "Matrix Matrix", normTitle: "matrix matrix"}

	// Exact match: base 1.0 plus a single token bonus, not one per duplicate.
	score := hybridScore("matrix matrix", &entry)
	assert.InDelta(t, 1.1, score, 1e-9)
}

func TestFindBestTitle_ResolvesTypo(t *testing.T) {
	matcher := NewTitleMatcher(NewTitleIndex(newMockCatalog(fixtureMovies())))

	title, ok := matcher.FindBestTitle(context.Background(), "inceptoin")
	require.True(t, ok)
	assert.Equal(t, "Inception", title)
}

func TestFindBestTitle_CaseAndWhitespaceInsensitive(t *testing.T) {
	matcher := NewTitleMatcher(NewTitleIndex(newMockCatalog(fixtureMovies())))

	title, ok := matcher.FindBestTitle(context.Background(), "  THE MATRIX  ")
	require.True(t, ok)
	assert.Equal(t, "The Matrix", title)
}

func TestFindBestTitle_NoConfidentMatch(t *testing.T) {
	matcher := NewTitleMatcher(NewTitleIndex(newMockCatalog(fixtureMovies())))

	_, ok := matcher.FindBestTitle(context.Background(), "zzzzqqqq")
	assert.False(t, ok)
}

func TestFindBestTitle_EmptyQuery(t *testing.T) {
	matcher := NewTitleMatcher(NewTitleIndex(newMockCatalog(fixtureMovies())))

	_, ok := matcher.FindBestTitle(context.Background(), "   ")
	assert.False(t, ok)
}

func TestFindBestTitle_UnavailableCatalog(t *testing.T) {
	catalog := newMockCatalog(fixtureMovies())
	catalog.unavailable = true
	matcher := NewTitleMatcher(NewTitleIndex(catalog))

	_, ok := matcher.FindBestTitle(context.Background(), "inception")
	assert.False(t, ok)
}

func TestFindBestTitle_TieKeepsFirstSeen(t *testing.T) {
	movies := []domain.Movie{
		{Title: "Heat", Year: "1995"},
		{Title: "HEAT", Year: "1972"},
	}
	matcher := NewTitleMatcher(NewTitleIndex(newMockCatalog(movies)))

	title, ok := matcher.FindBestTitle(context.Background(), "heat")
	require.True(t, ok)
	assert.Equal(t, "Heat", title, "equal scores must keep the first entry in index order")
}
