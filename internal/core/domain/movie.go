package domain

import "strings"

// Movie is a single record from the IMDb Top-1000 catalog.
// Records are created once at ingestion time and are read-only afterwards.
type Movie struct {
	// Title is the canonical display title as stored in the dataset.
	Title string

	// Year is the release year. Kept as a string because the dataset
	// contains non-numeric values for a handful of rows.
	Year string

	// Genre is a comma-separated genre list, e.g. "Action, Sci-Fi".
	Genre string

	// Rating is the IMDb rating (0-10).
	Rating float64

	// Director is the credited director.
	Director string

	// Cast holds up to four credited actors in billing order.
	// Empty slots are omitted.
	Cast []string

	// Synopsis is the plot overview.
	Synopsis string
}

// CastLine renders the cast as a comma-separated list, or an em-dash
// placeholder when no actors are known.
func (m *Movie) CastLine() string {
	actors := make([]string, 0, len(m.Cast))
	for _, a := range m.Cast {
		if s := strings.TrimSpace(a); s != "" {
			actors = append(actors, s)
		}
	}
	if len(actors) == 0 {
		return "—"
	}
	return strings.Join(actors, ", ")
}
