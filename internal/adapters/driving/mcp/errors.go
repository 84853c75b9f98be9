// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Kinoman. It exposes the movie catalog tools to AI assistants, returning
// the same rendered answers the chat agent sees.
package mcp

import "errors"

// ErrMissingMovieTools is returned when the movie tools service is not provided.
var ErrMissingMovieTools = errors.New("mcp: movie tools service is required")
