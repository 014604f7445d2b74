// Package filestore reads and writes task files on the local filesystem.
package filestore

import (
	"fmt"
	"os"

	"github.com/dolist/dolist/internal/codec"
	"github.com/dolist/dolist/internal/domain"
)

// Store implements domain.TaskStore on top of the local filesystem.
type Store struct{}

// New creates a Store.
func New() *Store {
	return &Store{}
}

// Read loads and decodes the task file at path. Filesystem failures and
// decode failures (domain.ErrMalformedFile) are reported as distinct errors.
func (s *Store) Read(path string) ([]domain.Task, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	tasks, err := codec.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return tasks, nil
}

// Write encodes tasks and writes them to path. The content goes to a temp
// file first and is renamed into place, so a failed write never leaves a
// truncated task file behind.
func (s *Store) Write(path string, tasks []domain.Task) error {
	content, err := codec.Encode(tasks)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Ensure Store implements TaskStore.
var _ domain.TaskStore = (*Store)(nil)
