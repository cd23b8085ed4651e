package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jyang234/taskforge/internal/llm"
	"github.com/jyang234/taskforge/internal/store"
	"github.com/jyang234/taskforge/internal/testutil"
)

// fakeGenerator returns canned collaborator responses.
type fakeGenerator struct {
	tasks     []llm.ProposedTask
	subtasks  []string
	revisions []llm.ProposedTask
	err       error
}

func (f *fakeGenerator) GenerateTasks(ctx context.Context, text string) ([]llm.ProposedTask, error) {
	return f.tasks, f.err
}

func (f *fakeGenerator) GenerateSubtasks(ctx context.Context, task *store.Task) ([]string, error) {
	return f.subtasks, f.err
}

func (f *fakeGenerator) ReviseTasks(ctx context.Context, prompt, pastSummary string, future []store.Task) ([]llm.ProposedTask, error) {
	return f.revisions, f.err
}

func useFake(t *testing.T, fake *fakeGenerator) {
	t.Helper()
	orig := newGenerator
	newGenerator = func() llm.Generator { return fake }
	t.Cleanup(func() { newGenerator = orig })
}

func TestParsePRDAppendsValidatedTasks(t *testing.T) {
	env := setupCLI(t)
	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	runAdd(addCmd, []string{"existing"})

	env.CreateFile("prd.md", "# Product\nBuild the thing.")
	useFake(t, &fakeGenerator{tasks: []llm.ProposedTask{
		{Title: "Design schema", Priority: "high"},
		{Title: "Build API", DependsOn: []int{1}},
	}})

	if err := runParsePRD(parsePRDCmd, []string{"prd.md"}); err != nil {
		t.Fatalf("parse-prd failed: %v", err)
	}

	s, _ := store.Load(env.TasksPath())
	if len(s.Tasks) != 3 {
		t.Fatalf("Expected 3 tasks, got %d", len(s.Tasks))
	}
	// Relative ref 1 translated to allocated id 2
	api := s.Find(3)
	if api == nil || len(api.DependsOn) != 1 || api.DependsOn[0] != 2 {
		t.Errorf("Expected task 3 to depend on [2], got %+v", api)
	}
}

func TestParsePRDFailureLeavesStoreUnchanged(t *testing.T) {
	env := setupCLI(t)
	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	env.CreateFile("prd.md", "doc")
	useFake(t, &fakeGenerator{err: &llm.CollaboratorError{Op: "generate tasks", Err: errors.New("boom")}})

	err := runParsePRD(parsePRDCmd, []string{"prd.md"})
	if err == nil {
		t.Fatal("Expected collaborator failure to propagate")
	}
	var ce *llm.CollaboratorError
	if !errors.As(err, &ce) {
		t.Errorf("Expected CollaboratorError, got %v", err)
	}

	s, _ := store.Load(env.TasksPath())
	if len(s.Tasks) != 0 {
		t.Error("Store mutated despite collaborator failure")
	}
}

func TestExpandAddsSubtasks(t *testing.T) {
	env := setupCLI(t)
	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	runAdd(addCmd, []string{"Parent"})

	useFake(t, &fakeGenerator{subtasks: []string{"Define routes", "Write handlers"}})

	if err := runExpand(expandCmd, []string{"1"}); err != nil {
		t.Fatalf("expand failed: %v", err)
	}

	s, _ := store.Load(env.TasksPath())
	parent := s.Find(1)
	if len(parent.Subtasks) != 2 {
		t.Fatalf("Expected 2 subtasks, got %d", len(parent.Subtasks))
	}
	if parent.SubtaskID(parent.Subtasks[1].Index) != "1.2" {
		t.Errorf("Unexpected subtask id: %s", parent.SubtaskID(parent.Subtasks[1].Index))
	}
}

func TestReviseReplacesFutureSegment(t *testing.T) {
	env := setupCLI(t)
	if err := store.Save(env.TasksPath(), testutil.SampleStore()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	two, three := 2, 3
	useFake(t, &fakeGenerator{revisions: []llm.ProposedTask{
		{ID: &two, Title: "Implement GraphQL API", Priority: "high", DependsOn: []int{1}},
		{ID: &three, Title: "Write API docs", DependsOn: []int{2}},
	}})

	reviseCmd.Flags().Set("from", "2")
	reviseCmd.Flags().Set("prompt", "switch to GraphQL")
	if err := runRevise(reviseCmd, nil); err != nil {
		t.Fatalf("revise failed: %v", err)
	}

	s, _ := store.Load(env.TasksPath())
	if s.Find(1).Status != store.StatusDone {
		t.Error("Past segment touched")
	}
	if s.Find(2).Title != "Implement GraphQL API" {
		t.Errorf("Expected revised task 2, got %q", s.Find(2).Title)
	}
	if got := s.Find(3).DependsOn; len(got) != 1 || got[0] != 2 {
		t.Errorf("Expected task 3 deps [2], got %v", got)
	}
}

func TestReviseDanglingRefFailsUnchanged(t *testing.T) {
	env := setupCLI(t)
	if err := store.Save(env.TasksPath(), testutil.SampleStore()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	five := 5
	useFake(t, &fakeGenerator{revisions: []llm.ProposedTask{
		{ID: &five, Title: "depends on nothing real", DependsOn: []int{99}},
	}})

	reviseCmd.Flags().Set("from", "5")
	reviseCmd.Flags().Set("prompt", "change")
	err := runRevise(reviseCmd, nil)
	if err == nil {
		t.Fatal("Expected integrity failure")
	}
	if !strings.Contains(err.Error(), "99") {
		t.Errorf("Expected diagnostic to name 99, got %v", err)
	}

	s, _ := store.Load(env.TasksPath())
	if len(s.Tasks) != 3 {
		t.Error("Store mutated despite failed revision")
	}
}
