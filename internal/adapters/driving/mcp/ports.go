package mcp

import (
	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Movies answers catalog questions as rendered text.
	Movies driving.MovieTools
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Movies == nil {
		return ErrMissingMovieTools
	}
	return nil
}
