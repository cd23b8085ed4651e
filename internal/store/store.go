package store

import (
	"fmt"
	"strconv"
	"time"
)

// Store is the in-memory form of the persisted task document. It is the
// sole owner of task and subtask records: every mutation goes through
// its methods and is followed by a Save.
type Store struct {
	Version      int       `yaml:"version"`
	LastModified time.Time `yaml:"last_modified"`
	Tasks        []Task    `yaml:"tasks"`
}

// New creates an empty store.
func New() *Store {
	return &Store{Version: 1, Tasks: []Task{}}
}

// Find returns the task with the given id, or nil.
func (s *Store) Find(id int) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// NextTaskID derives the next task id purely from current contents:
// max existing id + 1, or 1 for an empty store. There is no counter
// separate from the store, so allocation never drifts from what is
// persisted and ids are never reused after removal.
func (s *Store) NextTaskID() int {
	next := 1
	for i := range s.Tasks {
		if s.Tasks[i].ID >= next {
			next = s.Tasks[i].ID + 1
		}
	}
	return next
}

// Add creates a task in status todo with the next free id. Dependency
// ids must reference existing tasks.
func (s *Store) Add(title, description string, priority Priority, dependsOn []int) (*Task, error) {
	if title == "" {
		return nil, fmt.Errorf("task title must not be empty")
	}
	var missing []string
	for _, dep := range dependsOn {
		if s.Find(dep) == nil {
			missing = append(missing, fmt.Sprintf("dependency %d does not exist", dep))
		}
	}
	if len(missing) > 0 {
		return nil, &IntegrityError{Problems: missing}
	}

	task := Task{
		ID:          s.NextTaskID(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      StatusTodo,
		DependsOn:   append([]int(nil), dependsOn...),
	}
	s.Tasks = append(s.Tasks, task)
	return &s.Tasks[len(s.Tasks)-1], nil
}

// Remove deletes a task and its subtasks, and strips the removed id
// from every other task's dependency list so no dangling reference is
// ever persisted.
func (s *Store) Remove(id int) error {
	at := -1
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			at = i
			break
		}
	}
	if at < 0 {
		return &IdentifierError{Ref: strconv.Itoa(id)}
	}
	s.Tasks = append(s.Tasks[:at], s.Tasks[at+1:]...)

	for i := range s.Tasks {
		deps := s.Tasks[i].DependsOn[:0]
		for _, dep := range s.Tasks[i].DependsOn {
			if dep != id {
				deps = append(deps, dep)
			}
		}
		if len(deps) == 0 {
			deps = nil
		}
		s.Tasks[i].DependsOn = deps
	}
	return nil
}

// SetStatus updates a task's status. Transitions are caller-directed,
// with one structural rule: a task cannot be forced to done while it
// has open subtasks.
func (s *Store) SetStatus(id int, status Status) error {
	task := s.Find(id)
	if task == nil {
		return &IdentifierError{Ref: strconv.Itoa(id)}
	}
	if status == StatusDone {
		if open := task.OpenSubtaskIDs(); len(open) > 0 {
			return &LifecycleError{TaskID: id, Incomplete: open}
		}
	}
	task.Status = status
	return nil
}

// SetSubtaskStatus updates one subtask's status by its external
// identifier, e.g. "5.2".
func (s *Store) SetSubtaskStatus(ref string, status Status) error {
	parentID, index, err := ParseSubtaskRef(ref)
	if err != nil {
		return err
	}
	parent := s.Find(parentID)
	if parent == nil {
		return &IdentifierError{Ref: strconv.Itoa(parentID)}
	}
	st := parent.FindSubtask(index)
	if st == nil {
		return &IdentifierError{Ref: ref}
	}
	st.Status = status
	return nil
}

// AddSubtask appends a subtask in status todo with the next free index
// under the parent, returning its external identifier.
func (s *Store) AddSubtask(parentID int, title string) (string, error) {
	if title == "" {
		return "", fmt.Errorf("subtask title must not be empty")
	}
	parent := s.Find(parentID)
	if parent == nil {
		return "", &IdentifierError{Ref: strconv.Itoa(parentID)}
	}
	st := Subtask{
		Index:  parent.NextSubtaskIndex(),
		Title:  title,
		Status: StatusTodo,
	}
	parent.Subtasks = append(parent.Subtasks, st)
	return parent.SubtaskID(st.Index), nil
}

// RemoveSubtask deletes one subtask by its external identifier. The
// freed index is never reused.
func (s *Store) RemoveSubtask(ref string) error {
	parentID, index, err := ParseSubtaskRef(ref)
	if err != nil {
		return err
	}
	parent := s.Find(parentID)
	if parent == nil {
		return &IdentifierError{Ref: strconv.Itoa(parentID)}
	}
	for i := range parent.Subtasks {
		if parent.Subtasks[i].Index == index {
			parent.Subtasks = append(parent.Subtasks[:i], parent.Subtasks[i+1:]...)
			return nil
		}
	}
	return &IdentifierError{Ref: ref}
}

// Update applies the non-nil fields to a task. A nil DependsOn leaves
// dependencies untouched; an empty non-nil slice clears them.
type Update struct {
	Title       *string
	Description *string
	Priority    *Priority
	DependsOn   []int
}

// Apply updates a task in place. Replacement dependencies must resolve
// to existing tasks and must not self-reference.
func (s *Store) Apply(id int, u Update) error {
	task := s.Find(id)
	if task == nil {
		return &IdentifierError{Ref: strconv.Itoa(id)}
	}
	if u.Title != nil {
		if *u.Title == "" {
			return fmt.Errorf("task title must not be empty")
		}
		task.Title = *u.Title
	}
	if u.Description != nil {
		task.Description = *u.Description
	}
	if u.Priority != nil {
		task.Priority = *u.Priority
	}
	if u.DependsOn != nil {
		var problems []string
		for _, dep := range u.DependsOn {
			if dep == id {
				problems = append(problems, fmt.Sprintf("task %d depends on itself", id))
			} else if s.Find(dep) == nil {
				problems = append(problems, fmt.Sprintf("dependency %d does not exist", dep))
			}
		}
		if len(problems) > 0 {
			return &IntegrityError{Problems: problems}
		}
		if len(u.DependsOn) == 0 {
			task.DependsOn = nil
		} else {
			task.DependsOn = append([]int(nil), u.DependsOn...)
		}
	}
	return nil
}

// ByStatus returns tasks filtered by status.
func (s *Store) ByStatus(status Status) []Task {
	var result []Task
	for _, t := range s.Tasks {
		if t.Status == status {
			result = append(result, t)
		}
	}
	return result
}

// Stats returns task counts per status.
func (s *Store) Stats() (total, done, inProgress, todo, blocked int) {
	for _, t := range s.Tasks {
		total++
		switch t.Status {
		case StatusDone:
			done++
		case StatusInProgress:
			inProgress++
		case StatusBlocked:
			blocked++
		default:
			todo++
		}
	}
	return
}

// Validate checks store-wide structural invariants: unique positive
// ids, unique subtask indexes, resolvable dependency references, and no
// self-references. Every violation found is reported.
func (s *Store) Validate() error {
	var problems []string
	seen := make(map[int]bool, len(s.Tasks))

	for i := range s.Tasks {
		t := &s.Tasks[i]
		if t.ID < 1 {
			problems = append(problems, fmt.Sprintf("task %q has non-positive id %d", t.Title, t.ID))
			continue
		}
		if seen[t.ID] {
			problems = append(problems, fmt.Sprintf("duplicate task id %d", t.ID))
		}
		seen[t.ID] = true

		idx := make(map[int]bool, len(t.Subtasks))
		for _, st := range t.Subtasks {
			if st.Index < 1 {
				problems = append(problems, fmt.Sprintf("task %d has subtask with non-positive index %d", t.ID, st.Index))
			}
			if idx[st.Index] {
				problems = append(problems, fmt.Sprintf("task %d has duplicate subtask index %d", t.ID, st.Index))
			}
			idx[st.Index] = true
		}
	}

	for i := range s.Tasks {
		t := &s.Tasks[i]
		for _, dep := range t.DependsOn {
			if dep == t.ID {
				problems = append(problems, fmt.Sprintf("task %d depends on itself", t.ID))
			} else if s.Find(dep) == nil {
				problems = append(problems, fmt.Sprintf("task %d depends on missing task %d", t.ID, dep))
			}
		}
	}

	if len(problems) > 0 {
		return &IntegrityError{Problems: problems}
	}
	return nil
}
