package engine

import (
	"github.com/jyang234/taskforge/internal/store"
)

// SelectNext returns the single task that should be worked on next, or
// nil when nothing is actionable. Candidates are todo tasks with every
// dependency done; among them, highest priority wins and the lowest id
// breaks ties, so selection is a total order and deterministic for
// identical store contents. Pure query, no mutation.
//
// Cyclic tasks can never have all dependencies done, so they are never
// candidates. A dangling dependency reference surfaces as an
// IntegrityError rather than being skipped.
func SelectNext(s *store.Store) (*store.Task, error) {
	var best *store.Task
	for i := range s.Tasks {
		task := &s.Tasks[i]
		if task.Status != store.StatusTodo {
			continue
		}
		ok, err := IsSatisfied(task, s)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if best == nil || better(task, best) {
			best = task
		}
	}
	return best, nil
}

func better(a, b *store.Task) bool {
	ra, rb := a.Priority.Rank(), b.Priority.Rank()
	if ra != rb {
		return ra > rb
	}
	return a.ID < b.ID
}
