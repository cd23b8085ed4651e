// Package engine holds the pure algorithms over a task store:
// dependency satisfaction, cycle detection, next-task selection, and
// the transactional revision merge. Nothing here touches disk; callers
// load a store, run an engine operation, and save on success.
package engine
