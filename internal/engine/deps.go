package engine

import (
	"fmt"
	"sort"

	"github.com/jyang234/taskforge/internal/store"
)

// IsSatisfied reports whether every dependency of the task resolves to
// a done task. A dependency that resolves to nothing is a
// data-integrity fault, never silently treated as satisfied.
func IsSatisfied(task *store.Task, s *store.Store) (bool, error) {
	for _, dep := range task.DependsOn {
		target := s.Find(dep)
		if target == nil {
			return false, &store.IntegrityError{
				Problems: []string{fmt.Sprintf("task %d depends on missing task %d", task.ID, dep)},
			}
		}
		if target.Status != store.StatusDone {
			return false, nil
		}
	}
	return true, nil
}

// FindCycles returns the ids of every task on a dependency cycle,
// sorted ascending. Depth-first traversal with a recursion-stack set:
// a back edge into the stack marks everything from its target to the
// top as cyclic. Dangling references are skipped here (Validate
// reports those).
func FindCycles(s *store.Store) []int {
	visited := make(map[int]bool, len(s.Tasks))
	onStack := make(map[int]bool, len(s.Tasks))
	cyclic := make(map[int]bool)
	var stack []int

	var visit func(id int)
	visit = func(id int) {
		visited[id] = true
		onStack[id] = true
		stack = append(stack, id)

		task := s.Find(id)
		if task != nil {
			for _, dep := range task.DependsOn {
				if s.Find(dep) == nil {
					continue
				}
				if onStack[dep] {
					for i := len(stack) - 1; i >= 0; i-- {
						cyclic[stack[i]] = true
						if stack[i] == dep {
							break
						}
					}
					continue
				}
				if !visited[dep] {
					visit(dep)
				}
			}
		}

		stack = stack[:len(stack)-1]
		onStack[id] = false
	}

	for i := range s.Tasks {
		if !visited[s.Tasks[i].ID] {
			visit(s.Tasks[i].ID)
		}
	}

	ids := make([]int, 0, len(cyclic))
	for id := range cyclic {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// HasCycle reports whether the dependency relation contains any cycle.
func HasCycle(s *store.Store) bool {
	return len(FindCycles(s)) > 0
}

// CheckGraph validates structural invariants plus acyclicity in one
// pass, for use before any mutating save.
func CheckGraph(s *store.Store) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if ids := FindCycles(s); len(ids) > 0 {
		problems := make([]string, len(ids))
		for i, id := range ids {
			problems[i] = fmt.Sprintf("task %d is on a dependency cycle", id)
		}
		return &store.IntegrityError{Problems: problems}
	}
	return nil
}
