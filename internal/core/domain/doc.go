// Package domain defines the core business entities for Kinoman.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Movie: A record from the IMDb Top-1000 catalog
//   - Message: A remembered conversation turn
//   - Profile: Learned user preferences
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
