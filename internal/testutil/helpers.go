// Package testutil provides reusable test utilities for taskforge
// integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv provides access to isolated test directories
type TestEnv struct {
	Home       string // Mocked HOME directory
	ProjectDir string // Test project directory
	ProjectCfg string // .taskforge in project
	t          *testing.T
}

// SetupTestEnv creates an isolated test environment with mocked HOME
// and working directory. Uses t.TempDir() for automatic cleanup and
// t.Setenv()/t.Chdir-style restoration.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	tmpProject := t.TempDir()

	projectCfg := filepath.Join(tmpProject, ".taskforge")
	if err := os.MkdirAll(projectCfg, 0755); err != nil {
		t.Fatalf("Failed to create project .taskforge: %v", err)
	}

	// Set HOME to temp directory (auto-restored after test)
	t.Setenv("HOME", tmpHome)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}
	if err := os.Chdir(tmpProject); err != nil {
		t.Fatalf("Failed to chdir into project: %v", err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })

	return &TestEnv{
		Home:       tmpHome,
		ProjectDir: tmpProject,
		ProjectCfg: projectCfg,
		t:          t,
	}
}

// CreateFile creates a file with the given content in the test
// environment. Relative paths are resolved against the project dir.
func (e *TestEnv) CreateFile(path, content string) {
	e.t.Helper()

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(e.ProjectDir, path)
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
}

// TasksPath returns the task document path inside the test project.
func (e *TestEnv) TasksPath() string {
	return filepath.Join(e.ProjectCfg, "tasks.yaml")
}

// ReadFile reads a file relative to the project directory.
func (e *TestEnv) ReadFile(path string) string {
	e.t.Helper()

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(e.ProjectDir, path)
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		e.t.Fatalf("Failed to read file %s: %v", fullPath, err)
	}
	return string(data)
}
