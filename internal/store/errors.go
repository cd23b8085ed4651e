package store

import (
	"fmt"
	"strings"
)

// StructuralError means the persisted document is missing or malformed.
type StructuralError struct {
	Path string
	Err  error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("tasks file %s: %v", e.Path, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// IdentifierError means a command referenced a task or subtask that
// does not exist.
type IdentifierError struct {
	Ref string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("no such task: %s", e.Ref)
}

// IntegrityError reports dependency-graph violations: cycles, dangling
// references, or references into removed id ranges. Problems holds every
// violation found, not just the first, so callers can fix a proposal in
// one pass.
type IntegrityError struct {
	Problems []string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity check failed: %s", strings.Join(e.Problems, "; "))
}

// LifecycleError rejects a status transition, currently only forcing a
// task to done while subtasks remain open.
type LifecycleError struct {
	TaskID     int
	Incomplete []string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("task %d cannot be done: incomplete subtasks %s",
		e.TaskID, strings.Join(e.Incomplete, ", "))
}
