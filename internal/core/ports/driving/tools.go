package driving

import "context"

// MovieTools exposes the catalog and metadata query tools to the outer
// layers (CLI commands, MCP server, agent tool registry).
//
// This is a hard boundary contract: every method takes primitive parameters
// and returns a single human-readable string with all miss and
// source-unavailable conditions already rendered into message text.
// Nothing escapes the boundary as an error.
type MovieTools interface {
	// MovieInfo returns a formatted description of the movie, resolving
	// the title with a direct substring match first and fuzzy matching
	// as a fallback.
	MovieInfo(ctx context.Context, title string) string

	// MovieRating returns the movie's IMDb rating, with the same title
	// resolution as MovieInfo.
	MovieRating(ctx context.Context, title string) string

	// MoviesWithActor lists movies featuring the actor, sorted by rating
	// descending, capped at limit.
	MoviesWithActor(ctx context.Context, actor string, limit int) string

	// TopByGenre lists the highest-rated movies in a genre, capped at limit.
	TopByGenre(ctx context.Context, genre string, limit int) string

	// SearchByKeyword lists movies whose synopsis contains the keyword,
	// capped at limit.
	SearchByKeyword(ctx context.Context, keyword string, limit int) string
}
