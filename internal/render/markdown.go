// Package render writes human-readable per-task markdown files from
// the task store. Output is regenerated wholesale; the store stays the
// single source of truth.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jyang234/taskforge/internal/store"
)

// WriteTaskFiles renders one markdown file per task plus an index
// README into outputDir. Stale task files from removed tasks are
// cleaned up so the directory always mirrors the store.
func WriteTaskFiles(s *store.Store, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := removeStaleFiles(s, outputDir); err != nil {
		return err
	}

	tasks := append([]store.Task(nil), s.Tasks...)
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	for i := range tasks {
		path := filepath.Join(outputDir, TaskFileName(tasks[i].ID))
		if err := os.WriteFile(path, []byte(RenderTask(&tasks[i], s)), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	indexPath := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(indexPath, []byte(renderIndex(tasks)), 0644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// TaskFileName returns the markdown file name for a task id.
func TaskFileName(id int) string {
	return fmt.Sprintf("task_%03d.md", id)
}

// RenderTask converts one task to markdown.
func RenderTask(t *store.Task, s *store.Store) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Task %d: %s\n\n", t.ID, t.Title)
	fmt.Fprintf(&sb, "- **Status:** %s\n", t.Status)
	fmt.Fprintf(&sb, "- **Priority:** %s\n", t.Priority)

	if len(t.DependsOn) > 0 {
		var deps []string
		for _, dep := range t.DependsOn {
			label := fmt.Sprintf("%d", dep)
			if target := s.Find(dep); target != nil {
				label = fmt.Sprintf("%d (%s, %s)", dep, target.Title, target.Status)
			}
			deps = append(deps, label)
		}
		fmt.Fprintf(&sb, "- **Depends on:** %s\n", strings.Join(deps, ", "))
	}
	sb.WriteString("\n")

	if t.Description != "" {
		sb.WriteString("## Description\n\n")
		sb.WriteString(t.Description)
		sb.WriteString("\n\n")
	}

	if len(t.Subtasks) > 0 {
		sb.WriteString("## Subtasks\n\n")
		for _, st := range t.Subtasks {
			mark := " "
			if st.Status == store.StatusDone {
				mark = "x"
			}
			fmt.Fprintf(&sb, "- [%s] %s %s (%s)\n", mark, t.SubtaskID(st.Index), st.Title, st.Status)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderIndex(tasks []store.Task) string {
	var sb strings.Builder

	sb.WriteString("# Tasks\n\n")
	sb.WriteString("| ID | Title | Priority | Status | Depends on |\n")
	sb.WriteString("|----|-------|----------|--------|------------|\n")
	for i := range tasks {
		t := &tasks[i]
		deps := "-"
		if len(t.DependsOn) > 0 {
			parts := make([]string, len(t.DependsOn))
			for j, dep := range t.DependsOn {
				parts[j] = fmt.Sprintf("%d", dep)
			}
			deps = strings.Join(parts, ", ")
		}
		fmt.Fprintf(&sb, "| %d | [%s](%s) | %s | %s | %s |\n",
			t.ID, t.Title, TaskFileName(t.ID), t.Priority, t.Status, deps)
	}
	return sb.String()
}

func removeStaleFiles(s *store.Store, outputDir string) error {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return fmt.Errorf("read output directory: %w", err)
	}

	live := make(map[string]bool, len(s.Tasks))
	for i := range s.Tasks {
		live[TaskFileName(s.Tasks[i].ID)] = true
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "task_") || !strings.HasSuffix(name, ".md") {
			continue
		}
		if !live[name] {
			if err := os.Remove(filepath.Join(outputDir, name)); err != nil {
				return fmt.Errorf("remove stale %s: %w", name, err)
			}
		}
	}
	return nil
}
