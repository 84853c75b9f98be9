package driven

import "context"

// MovieMetadata is a record returned by the remote metadata API.
// All fields are kept as strings, matching the wire format.
type MovieMetadata struct {
	Title    string
	Year     string
	Genre    string
	Director string
	Actors   string
	Rating   string
	Plot     string
}

// MetadataSearchHit is a single result of a remote keyword search.
type MetadataSearchHit struct {
	Title string
	Year  string
}

// MetadataService queries a remote movie-metadata API (OMDb).
// This is an optional service: when nil, the corresponding agent tools
// report the API as unconfigured.
type MetadataService interface {
	// Lookup fetches full metadata for a title.
	// Returns domain.ErrNotFound when the API has no match.
	Lookup(ctx context.Context, title string) (*MovieMetadata, error)

	// Search finds titles matching a keyword.
	// Returns domain.ErrNotFound when the API has no matches.
	Search(ctx context.Context, keyword string) ([]MetadataSearchHit, error)
}
