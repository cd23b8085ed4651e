// Package store owns the persisted task graph: the task and subtask
// data model, identifier allocation, the status lifecycle, and the
// on-disk YAML document.
//
// # Document
//
// The document lives at .taskforge/tasks.yaml and round-trips
// losslessly:
//
//	version: 1
//	last_modified: 2025-06-01T10:00:00Z
//	tasks:
//	  - id: 1
//	    title: "Set up schema"
//	    priority: high
//	    status: done
//	  - id: 2
//	    title: "Implement API"
//	    priority: medium
//	    status: todo
//	    depends_on: [1]
//	    subtasks:
//	      - index: 1
//	        title: "Define routes"
//	        status: todo
//
// # Identifiers
//
// Task ids are positive integers assigned as max existing id + 1 and
// never reused, even after removal. Subtask indexes follow the same
// rule within their parent; the external form is "<taskId>.<index>".
// Allocation is derived purely from current store contents, so two
// calls without an insert return the same value and the allocator can
// never drift from what is persisted.
//
// # Ownership
//
// The Store is the single owner of all records. Every mutation goes
// through its methods, runs validation to completion first, and is
// immediately followed by Save — mutating commands are all-or-nothing.
// Saves are atomic (temp file + rename).
package store
