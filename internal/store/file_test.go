package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".taskforge", "tasks.yaml")

	s := New()
	s.Add("Set up schema", "create tables", PriorityHigh, nil)
	s.Add("Implement API", "", PriorityMedium, []int{1})
	s.AddSubtask(2, "Define routes")
	s.AddSubtask(2, "Write handlers")
	s.SetStatus(1, StatusDone)
	s.SetSubtaskStatus("2.1", StatusInProgress)

	if err := Save(path, s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !reflect.DeepEqual(s.Tasks, loaded.Tasks) {
		t.Errorf("Round trip mismatch:\nsaved:  %+v\nloaded: %+v", s.Tasks, loaded.Tasks)
	}
	if loaded.Version != 1 {
		t.Errorf("Expected version 1, got %d", loaded.Version)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "tasks.yaml"))
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("Expected StructuralError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("Expected wrapped os.ErrNotExist for init detection")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	os.WriteFile(path, []byte("tasks: [not: {valid"), 0644)

	_, err := Load(path)
	var se *StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("Expected StructuralError, got %v", err)
	}
}

func TestLoadRejectsCorruptGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	doc := `version: 1
tasks:
  - id: 1
    title: a
    status: todo
    priority: medium
    depends_on: [99]
`
	os.WriteFile(path, []byte(doc), 0644)

	_, err := Load(path)
	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("Expected IntegrityError, got %v", err)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.yaml")

	if err := Save(path, New()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Temp file left behind after save")
	}
}
