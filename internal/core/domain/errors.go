package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrCatalogUnavailable indicates the backing movie database is missing
	// or unreadable. This is a normal, recoverable condition: tools render
	// it as a uniform "data source unavailable" message and the fuzzy index
	// stays empty.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrNotFound indicates a requested entity does not exist.
	// For query tools this is a valid negative result, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a caller-contract violation, such as a
	// limit parameter that cannot be coerced to an integer. It is surfaced
	// as a hard failure rather than silently defaulted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// The chat agent cannot run without it; query tools still work.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrMetadataUnavailable indicates the remote metadata API is not
	// configured (missing API key).
	ErrMetadataUnavailable = errors.New("metadata service unavailable")
)
