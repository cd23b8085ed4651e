// Package audit keeps a local history of task graph mutations in a
// SQLite database, one row per successful mutating command. History is
// advisory: a failure to record never blocks the command itself.
package audit

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one recorded mutation.
type Entry struct {
	ID         int64     `json:"id"`
	Op         string    `json:"op"`
	TaskRef    string    `json:"task_ref,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	RevisionID string    `json:"revision_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Log handles SQLite operations for the mutation history.
type Log struct {
	db *sql.DB
}

// DefaultPath returns the history database path for a project directory.
func DefaultPath(projectPath string) string {
	return filepath.Join(projectPath, ".taskforge", "history.db")
}

// Open opens (creating if necessary) the history database.
func Open(dbPath string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return &Log{db: db}, nil
}

// Close closes the database connection.
func (l *Log) Close() error {
	return l.db.Close()
}

// Record appends one mutation entry.
func (l *Log) Record(op, taskRef, detail string) error {
	_, err := l.db.Exec(
		`INSERT INTO history (op, task_ref, detail, created_at) VALUES (?, ?, ?, ?)`,
		op, taskRef, detail, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}

// RecordRevision appends a revision entry tagged with a fresh short
// revision id and returns that id.
func (l *Log) RecordRevision(fromID, taskCount int) (string, error) {
	revisionID := "rev-" + uuid.New().String()[:8]
	_, err := l.db.Exec(
		`INSERT INTO history (op, task_ref, detail, revision_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		"revise", fmt.Sprintf("%d", fromID),
		fmt.Sprintf("future segment replaced with %d tasks", taskCount),
		revisionID, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("record revision: %w", err)
	}
	return revisionID, nil
}

// Recent returns the newest entries, most recent first.
func (l *Log) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := l.db.Query(
		`SELECT id, op, task_ref, detail, revision_id, created_at
		 FROM history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Op, &e.TaskRef, &e.Detail, &e.RevisionID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
