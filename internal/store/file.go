package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath returns the tasks document path for a project directory.
func DefaultPath(projectPath string) string {
	return filepath.Join(projectPath, ".taskforge", "tasks.yaml")
}

// Load reads and validates the tasks document. A missing or malformed
// file is a StructuralError; callers that allow a fresh start (init)
// check for os.ErrNotExist via errors.Is.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StructuralError{Path: path, Err: err}
	}

	var s Store
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &StructuralError{Path: path, Err: fmt.Errorf("parse: %w", err)}
	}
	if s.Version == 0 {
		s.Version = 1
	}
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the document atomically via a temp file and rename, so a
// crash mid-write never leaves a truncated document behind.
func Save(path string, s *Store) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create tasks directory: %w", err)
	}

	s.LastModified = time.Now().UTC()

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename tasks: %w", err)
	}
	return nil
}
