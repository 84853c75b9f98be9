package services

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kinoman-cli/internal/logger"
)

// indexEntry is a normalised per-movie search record.
// Entries are constructed once during the index build and never mutated.
type indexEntry struct {
	// title keeps the original casing; it is the key used to re-fetch the
	// full record from the catalog.
	title string

	// normTitle is the lower-cased, trimmed title that scoring runs on.
	normTitle string

	// searchText is the lower-cased synopsis plus genre, director and cast,
	// used only for the secondary metadata bonus.
	searchText string
}

// TitleIndex is an in-memory cache of search records derived from the
// catalog. It is built lazily exactly once per process: the dataset is
// static, so the index is never invalidated or rebuilt. When the catalog
// is unavailable at build time the index stays permanently empty, which
// downstream code treats as "no matches possible" rather than an error.
//
// The index holds derived copies, not references, so catalog unavailability
// after the build cannot corrupt in-flight matching.
type TitleIndex struct {
	catalog driven.CatalogStore

	once    sync.Once
	entries []indexEntry
}

// NewTitleIndex creates an unloaded index over the given catalog.
func NewTitleIndex(catalog driven.CatalogStore) *TitleIndex {
	return &TitleIndex{catalog: catalog}
}

// ensureLoaded builds the index on first call and is a no-op afterwards.
// sync.Once guarantees concurrent first users observe either the completed
// build or block until it finishes, never a partial index.
func (ix *TitleIndex) ensureLoaded(ctx context.Context) {
	ix.once.Do(func() {
		movies, err := ix.catalog.All(ctx)
		if err != nil {
			// Unavailable catalog is not an error state: the index is
			// simply empty for the rest of the process lifetime.
			logger.Warn("Title index build skipped: %v", err)
			return
		}

		// Build into a local slice and assign once, so a failure above
		// can never leave a partially populated index.
		entries := make([]indexEntry, 0, len(movies))
		for i := range movies {
			m := &movies[i]

			metaParts := make([]string, 0, 6)
			for _, part := range append([]string{m.Genre, m.Director}, m.Cast...) {
				if part != "" {
					metaParts = append(metaParts, part)
				}
			}

			entries = append(entries, indexEntry{
				title:      m.Title,
				normTitle:  normalizeQuery(m.Title),
				searchText: strings.ToLower(m.Synopsis + " " + strings.Join(metaParts, " ")),
			})
		}

		ix.entries = entries
		logger.Debug("Title index built: %d entries", len(entries))
	})
}

// Entries returns the current entry sequence after ensuring the index is
// loaded. Empty when the catalog was unavailable at build time.
func (ix *TitleIndex) Entries(ctx context.Context) []indexEntry {
	ix.ensureLoaded(ctx)
	return ix.entries
}

// normalizeQuery trims and lower-cases a search string.
func normalizeQuery(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
