package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is the lifecycle state of a task or subtask.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusDone       Status = "done"
	StatusBlocked    Status = "blocked"
)

// ParseStatus validates a user-supplied status string.
// Accepts "in-progress" and "in_progress" as aliases for "inprogress".
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo":
		return StatusTodo, nil
	case "inprogress", "in-progress", "in_progress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	case "blocked":
		return StatusBlocked, nil
	}
	return "", fmt.Errorf("invalid status %q (want todo, inprogress, done, or blocked)", s)
}

// Priority orders tasks for selection.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank maps a priority to its scheduling weight. Unknown values rank
// below low so malformed data never jumps the queue.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// ParsePriority validates a user-supplied priority string.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium", "":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	}
	return "", fmt.Errorf("invalid priority %q (want high, medium, or low)", s)
}

// Task is a top-level unit of work. Dependencies reference other task
// ids, never subtasks.
type Task struct {
	ID          int       `yaml:"id" json:"id"`
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Priority    Priority  `yaml:"priority" json:"priority"`
	Status      Status    `yaml:"status" json:"status"`
	DependsOn   []int     `yaml:"depends_on,omitempty" json:"dependsOn,omitempty"`
	Subtasks    []Subtask `yaml:"subtasks,omitempty" json:"subtasks,omitempty"`
}

// Subtask is a child unit of work scoped to one parent task. Its index
// is assigned in creation order starting at 1 and never reused, so gaps
// are normal after removal.
type Subtask struct {
	Index  int    `yaml:"index" json:"index"`
	Title  string `yaml:"title" json:"title"`
	Status Status `yaml:"status" json:"status"`
}

// SubtaskID renders the external identifier for a subtask of this task,
// e.g. "5.2".
func (t *Task) SubtaskID(index int) string {
	return strconv.Itoa(t.ID) + "." + strconv.Itoa(index)
}

// NextSubtaskIndex derives the next subtask index purely from current
// contents: max existing index + 1, or 1 for the first subtask. Calling
// it twice without inserting returns the same value.
func (t *Task) NextSubtaskIndex() int {
	next := 1
	for _, st := range t.Subtasks {
		if st.Index >= next {
			next = st.Index + 1
		}
	}
	return next
}

// FindSubtask returns the subtask with the given index, or nil.
func (t *Task) FindSubtask(index int) *Subtask {
	for i := range t.Subtasks {
		if t.Subtasks[i].Index == index {
			return &t.Subtasks[i]
		}
	}
	return nil
}

// OpenSubtaskIDs lists external identifiers of subtasks not yet done.
func (t *Task) OpenSubtaskIDs() []string {
	var open []string
	for _, st := range t.Subtasks {
		if st.Status != StatusDone {
			open = append(open, t.SubtaskID(st.Index))
		}
	}
	return open
}

// ParseSubtaskRef splits an external subtask identifier like "5.2" into
// its parent id and index.
func ParseSubtaskRef(ref string) (parentID, index int, err error) {
	parts := strings.SplitN(ref, ".", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid subtask id %q (want <taskId>.<index>)", ref)
	}
	parentID, err = strconv.Atoi(parts[0])
	if err != nil || parentID < 1 {
		return 0, 0, fmt.Errorf("invalid subtask id %q (want <taskId>.<index>)", ref)
	}
	index, err = strconv.Atoi(parts[1])
	if err != nil || index < 1 {
		return 0, 0, fmt.Errorf("invalid subtask id %q (want <taskId>.<index>)", ref)
	}
	return parentID, index, nil
}
