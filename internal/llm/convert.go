package llm

import (
	"fmt"
	"strings"

	"github.com/jyang234/taskforge/internal/store"
)

// NewTasksFromProposal converts a generated task list into store tasks
// ready to append. Ids are allocated from the store; 1-based
// list-relative dependency references are translated into the
// allocated ids. Every violation found is reported in one pass.
func NewTasksFromProposal(s *store.Store, proposed []ProposedTask) ([]store.Task, error) {
	if len(proposed) == 0 {
		return nil, fmt.Errorf("proposal contains no tasks")
	}

	base := s.NextTaskID()
	var problems []string
	tasks := make([]store.Task, 0, len(proposed))

	for i, p := range proposed {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			problems = append(problems, fmt.Sprintf("entry %d has an empty title", i+1))
		}

		priority := store.PriorityMedium
		if p.Priority != "" {
			parsed, err := store.ParsePriority(p.Priority)
			if err != nil {
				problems = append(problems, fmt.Sprintf("entry %d: %v", i+1, err))
			} else {
				priority = parsed
			}
		}

		var deps []int
		for _, ref := range p.DependsOn {
			if ref < 1 || ref > len(proposed) {
				problems = append(problems, fmt.Sprintf("entry %d references position %d, outside the generated list", i+1, ref))
				continue
			}
			if ref == i+1 {
				problems = append(problems, fmt.Sprintf("entry %d references itself", i+1))
				continue
			}
			deps = append(deps, base+ref-1)
		}

		tasks = append(tasks, store.Task{
			ID:          base + i,
			Title:       title,
			Description: strings.TrimSpace(p.Description),
			Priority:    priority,
			Status:      store.StatusTodo,
			DependsOn:   deps,
		})
	}

	if len(problems) > 0 {
		return nil, &store.IntegrityError{Problems: problems}
	}
	return tasks, nil
}

// FutureTasksFromProposal converts a revision proposal into store
// tasks for the merger. Entries must carry a real id and a title;
// referential integrity against the past segment is the merger's job.
func FutureTasksFromProposal(proposed []ProposedTask) ([]store.Task, error) {
	var problems []string
	tasks := make([]store.Task, 0, len(proposed))

	for i, p := range proposed {
		if p.ID == nil {
			problems = append(problems, fmt.Sprintf("entry %d carries no id", i+1))
			continue
		}
		title := strings.TrimSpace(p.Title)
		if title == "" {
			problems = append(problems, fmt.Sprintf("entry %d (id %d) has an empty title", i+1, *p.ID))
		}

		priority := store.PriorityMedium
		if p.Priority != "" {
			parsed, err := store.ParsePriority(p.Priority)
			if err != nil {
				problems = append(problems, fmt.Sprintf("entry %d: %v", i+1, err))
			} else {
				priority = parsed
			}
		}

		tasks = append(tasks, store.Task{
			ID:          *p.ID,
			Title:       title,
			Description: strings.TrimSpace(p.Description),
			Priority:    priority,
			Status:      store.StatusTodo,
			DependsOn:   append([]int(nil), p.DependsOn...),
		})
	}

	if len(problems) > 0 {
		return nil, &store.IntegrityError{Problems: problems}
	}
	return tasks, nil
}
