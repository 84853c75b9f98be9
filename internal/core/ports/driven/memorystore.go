package driven

import "github.com/custodia-labs/kinoman-cli/internal/core/domain"

// MemorySnapshot is the persisted state of the conversation memory.
type MemorySnapshot struct {
	Profile domain.Profile   `json:"profile"`
	History []domain.Message `json:"history"`
}

// MemoryStore persists conversation memory between sessions.
// A corrupt or missing store is tolerated: Load returns an empty snapshot.
type MemoryStore interface {
	// Load reads the stored snapshot. Never fails on a missing or corrupt
	// file; the agent simply starts with a blank memory.
	Load() *MemorySnapshot

	// Save persists the snapshot.
	Save(snapshot *MemorySnapshot) error

	// Path returns the storage location for display purposes.
	Path() string
}
