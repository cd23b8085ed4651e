package engine

import (
	"fmt"
	"sort"

	"github.com/jyang234/taskforge/internal/store"
)

// MergeRevision transactionally replaces the future segment of the
// store (tasks with id >= fromID) with the proposed list, keeping the
// past segment (id < fromID) untouched. Validation runs to completion
// before anything is written: every proposed entry needs a positive id
// inside the future range and a non-empty title, and every dependency
// must resolve either into the past segment or into the proposal
// itself. All violations are collected into one IntegrityError and on
// any failure the store is left unmodified.
func MergeRevision(s *store.Store, fromID int, proposed []store.Task) error {
	if fromID < 1 {
		return fmt.Errorf("revision from-id must be positive, got %d", fromID)
	}

	past := make([]store.Task, 0, len(s.Tasks))
	pastIDs := make(map[int]bool)
	for _, t := range s.Tasks {
		if t.ID < fromID {
			past = append(past, t)
			pastIDs[t.ID] = true
		}
	}

	var problems []string

	proposedIDs := make(map[int]bool, len(proposed))
	for _, p := range proposed {
		if p.ID < fromID {
			problems = append(problems, fmt.Sprintf("proposed task %d is below the revision boundary %d", p.ID, fromID))
			continue
		}
		if proposedIDs[p.ID] {
			problems = append(problems, fmt.Sprintf("proposed task id %d appears more than once", p.ID))
		}
		proposedIDs[p.ID] = true
	}

	future := make([]store.Task, 0, len(proposed))
	for _, p := range proposed {
		if p.Title == "" {
			problems = append(problems, fmt.Sprintf("proposed task %d has an empty title", p.ID))
		}
		if p.Status == "" {
			p.Status = store.StatusTodo
		}
		if p.Priority == "" {
			p.Priority = store.PriorityMedium
		}
		for _, dep := range p.DependsOn {
			if dep == p.ID {
				problems = append(problems, fmt.Sprintf("proposed task %d depends on itself", p.ID))
				continue
			}
			if !pastIDs[dep] && !proposedIDs[dep] {
				problems = append(problems, fmt.Sprintf("proposed task %d depends on %d, which exists neither in the past segment nor in the proposal", p.ID, dep))
			}
		}
		future = append(future, p)
	}

	if len(problems) > 0 {
		return &store.IntegrityError{Problems: problems}
	}

	sort.Slice(future, func(i, j int) bool { return future[i].ID < future[j].ID })

	candidate := &store.Store{
		Version: s.Version,
		Tasks:   append(past, future...),
	}
	if err := CheckGraph(candidate); err != nil {
		return err
	}

	s.Tasks = candidate.Tasks
	return nil
}
