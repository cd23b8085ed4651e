package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/jyang234/taskforge/internal/store"
)

// CollaboratorError wraps any failure of the text-generation service:
// transport errors, malformed responses, missing binary. Always
// recoverable by aborting the command with no mutation.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("text generation (%s): %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// Generator is the collaborator interface for task content generation.
// Implementations return untrusted output; callers must validate it
// before anything touches the store.
type Generator interface {
	// GenerateTasks proposes a flat task list from unstructured input
	// text. Dependency references are 1-based and relative to the
	// generated list only.
	GenerateTasks(ctx context.Context, text string) ([]ProposedTask, error)

	// GenerateSubtasks proposes subtask titles for one task.
	GenerateSubtasks(ctx context.Context, task *store.Task) ([]string, error)

	// ReviseTasks proposes a replacement for the future task segment.
	// Proposed entries carry real task ids.
	ReviseTasks(ctx context.Context, prompt, pastSummary string, future []store.Task) ([]ProposedTask, error)
}

// ClaudeCLI generates task content by invoking the claude binary in
// print mode and parsing its JSON-wrapped result.
type ClaudeCLI struct {
	Binary  string
	Model   string
	Timeout time.Duration
}

// NewClaudeCLI builds a client with the configured binary and model.
func NewClaudeCLI(binary, model string, timeout time.Duration) *ClaudeCLI {
	if binary == "" {
		binary = "claude"
	}
	return &ClaudeCLI{Binary: binary, Model: model, Timeout: timeout}
}

func (c *ClaudeCLI) invoke(ctx context.Context, op, prompt string) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	args := []string{"-p", prompt, "--output-format", "json"}
	if c.Model != "" {
		args = append(args, "--model", c.Model)
	}

	cmd := exec.CommandContext(ctx, c.Binary, args...)
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CollaboratorError{Op: op, Err: fmt.Errorf("%w (stderr: %s)", err, strings.TrimSpace(stderr.String()))}
	}

	// Print mode wraps the result in a JSON object with a "result"
	// field; fall back to raw stdout if the wrapper is absent.
	var wrapped struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &wrapped); err != nil || wrapped.Result == "" {
		return stdout.String(), nil
	}
	return wrapped.Result, nil
}

// GenerateTasks implements Generator.
func (c *ClaudeCLI) GenerateTasks(ctx context.Context, text string) ([]ProposedTask, error) {
	raw, err := c.invoke(ctx, "generate tasks", taskListPrompt(text))
	if err != nil {
		return nil, err
	}
	tasks, err := ParseTaskList(raw)
	if err != nil {
		return nil, &CollaboratorError{Op: "generate tasks", Err: err}
	}
	return tasks, nil
}

// GenerateSubtasks implements Generator.
func (c *ClaudeCLI) GenerateSubtasks(ctx context.Context, task *store.Task) ([]string, error) {
	raw, err := c.invoke(ctx, "generate subtasks", subtaskPrompt(task))
	if err != nil {
		return nil, err
	}
	titles, err := ParseTitleList(raw)
	if err != nil {
		return nil, &CollaboratorError{Op: "generate subtasks", Err: err}
	}
	return titles, nil
}

// ReviseTasks implements Generator.
func (c *ClaudeCLI) ReviseTasks(ctx context.Context, prompt, pastSummary string, future []store.Task) ([]ProposedTask, error) {
	raw, err := c.invoke(ctx, "revise tasks", revisionPrompt(prompt, pastSummary, future))
	if err != nil {
		return nil, err
	}
	tasks, err := ParseTaskList(raw)
	if err != nil {
		return nil, &CollaboratorError{Op: "revise tasks", Err: err}
	}
	return tasks, nil
}
