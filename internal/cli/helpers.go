package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jyang234/taskforge/internal/audit"
	"github.com/jyang234/taskforge/internal/engine"
	"github.com/jyang234/taskforge/internal/llm"
	"github.com/jyang234/taskforge/internal/store"
)

// resolvePath resolves a configured path against the current directory.
func resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, p)
}

func tasksPath() string {
	return resolvePath(cfg.Tasks.File)
}

func loadStore() (*store.Store, error) {
	return store.Load(tasksPath())
}

// saveStore re-validates the full graph before anything is written, so
// every mutating command is all-or-nothing.
func saveStore(s *store.Store) error {
	if err := engine.CheckGraph(s); err != nil {
		return err
	}
	return store.Save(tasksPath(), s)
}

// record appends a history entry. History is advisory: failures only
// warn in verbose mode and never fail the command.
func record(op, taskRef, detail string) {
	if !cfg.History.Enabled {
		return
	}
	log, err := audit.Open(resolvePath(cfg.History.File))
	if err != nil {
		warnHistory(err)
		return
	}
	defer log.Close()
	if err := log.Record(op, taskRef, detail); err != nil {
		warnHistory(err)
	}
}

func recordRevision(fromID, taskCount int) {
	if !cfg.History.Enabled {
		return
	}
	log, err := audit.Open(resolvePath(cfg.History.File))
	if err != nil {
		warnHistory(err)
		return
	}
	defer log.Close()
	revisionID, err := log.RecordRevision(fromID, taskCount)
	if err != nil {
		warnHistory(err)
		return
	}
	if verbose {
		fmt.Printf("Recorded %s\n", revisionID)
	}
}

func warnHistory(err error) {
	if verbose {
		fmt.Fprintf(os.Stderr, "warning: history not recorded: %v\n", err)
	}
}

func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

// newGenerator is a variable so tests can substitute a fake
// collaborator.
var newGenerator = func() llm.Generator {
	return llm.NewClaudeCLI(cfg.LLM.Binary, cfg.LLM.Model,
		time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
}

func printTask(t *store.Task) {
	fmt.Printf("%d: %s [%s, %s]\n", t.ID, t.Title, t.Priority, t.Status)
	if t.Description != "" {
		fmt.Printf("   %s\n", t.Description)
	}
	if len(t.DependsOn) > 0 {
		fmt.Printf("   depends on: %v\n", t.DependsOn)
	}
	for _, st := range t.Subtasks {
		fmt.Printf("   %s %s [%s]\n", t.SubtaskID(st.Index), st.Title, st.Status)
	}
}
