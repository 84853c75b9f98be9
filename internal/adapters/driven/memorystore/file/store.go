// Package file provides a JSON-file-backed memory store. The conversation
// history and the extracted user profile survive between chat sessions.
package file

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/custodia-labs/kinoman-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kinoman-cli/internal/logger"
)

// Ensure MemoryStore implements the interface.
var _ driven.MemoryStore = (*MemoryStore)(nil)

// MemoryStore persists the agent's memory snapshot as a JSON file.
type MemoryStore struct {
	path string
}

// NewMemoryStore creates a memory store at the given file path.
func NewMemoryStore(path string) *MemoryStore {
	return &MemoryStore{path: path}
}

// Load reads the snapshot from disk. A missing or corrupt file yields an
// empty snapshot: losing memory must never block the conversation.
func (s *MemoryStore) Load() *driven.MemorySnapshot {
	snapshot := &driven.MemorySnapshot{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Memory file unreadable, starting fresh: %v", err)
		}
		return snapshot
	}

	if err := json.Unmarshal(data, snapshot); err != nil {
		logger.Warn("Memory file corrupt, starting fresh: %v", err)
		return &driven.MemorySnapshot{}
	}
	return snapshot
}

// Save writes the snapshot to disk, creating parent directories as needed.
// The file is user-only: the history may contain personal details.
func (s *MemoryStore) Save(snapshot *driven.MemorySnapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Path returns the storage location.
func (s *MemoryStore) Path() string {
	return s.path
}
