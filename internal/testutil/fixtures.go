package testutil

import (
	"github.com/jyang234/taskforge/internal/store"
)

// SampleStore returns a small task graph used across integration
// tests: one done task, one satisfied medium-priority task depending on
// it, and one free low-priority task.
func SampleStore() *store.Store {
	return &store.Store{
		Version: 1,
		Tasks: []store.Task{
			{
				ID:       1,
				Title:    "Set up database schema",
				Priority: store.PriorityHigh,
				Status:   store.StatusDone,
			},
			{
				ID:        2,
				Title:     "Implement REST API",
				Priority:  store.PriorityMedium,
				Status:    store.StatusTodo,
				DependsOn: []int{1},
				Subtasks: []store.Subtask{
					{Index: 1, Title: "Define routes", Status: store.StatusTodo},
					{Index: 2, Title: "Write handlers", Status: store.StatusTodo},
				},
			},
			{
				ID:       3,
				Title:    "Write user documentation",
				Priority: store.PriorityLow,
				Status:   store.StatusTodo,
			},
		},
	}
}

// SampleDocument is the YAML form of a minimal valid task document.
const SampleDocument = `version: 1
tasks:
  - id: 1
    title: Set up database schema
    priority: high
    status: done
  - id: 2
    title: Implement REST API
    priority: medium
    status: todo
    depends_on: [1]
  - id: 3
    title: Write user documentation
    priority: low
    status: todo
`
