// Package state persists the processed-report set as a JSON file.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"FadaMonitor/internal/domain"
	"FadaMonitor/internal/ports"
)

// FileStore stores ProcessingState at a fixed path. Unknown fields in the
// persisted form are ignored on load so the schema can grow.
type FileStore struct {
	path string
}

var _ ports.StateStore = (*FileStore)(nil)

// NewFileStore targets the given state-file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted state. A missing file yields an empty state; a
// malformed file is an error, since discarding it silently would cause
// duplicate re-notification of every past report.
func (s *FileStore) Load() (domain.ProcessingState, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ProcessingState{}, nil
	}
	if err != nil {
		return domain.ProcessingState{}, fmt.Errorf("read state file %s: %w", s.path, err)
	}

	var state domain.ProcessingState
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.ProcessingState{}, fmt.Errorf("malformed state file %s: %w", s.path, err)
	}
	return state, nil
}

// Save overwrites the persisted state. The write goes to a temp file in the
// same directory followed by a rename, so a crash never leaves a truncated
// state file behind.
func (s *FileStore) Save(state domain.ProcessingState) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".fada_monitor_state-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace state file %s: %w", s.path, err)
	}
	return nil
}
