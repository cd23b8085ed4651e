package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProposedTask is the untrusted variant shape returned by the
// text-generation service. It never enters the store directly: convert
// it through NewTasksFromProposal or FutureTasksFromProposal, which
// validate every field.
type ProposedTask struct {
	ID          *int   `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DependsOn   []int  `json:"dependsOn,omitempty"`

	// LowConfidence marks entries recovered by the fallback parser
	// rather than a well-formed JSON response.
	LowConfidence bool `json:"-"`
}

// ParseTaskList parses a response into proposed tasks: first a strict
// JSON array parse, then a best-effort line-split fallback producing
// title-only entries flagged LowConfidence. An empty result from both
// stages is an error.
func ParseTaskList(raw string) ([]ProposedTask, error) {
	if tasks, err := parseTaskListStrict(raw); err == nil {
		return tasks, nil
	}

	tasks := parseTaskListLoose(raw)
	if len(tasks) == 0 {
		return nil, fmt.Errorf("response contains no parseable tasks")
	}
	return tasks, nil
}

func parseTaskListStrict(raw string) ([]ProposedTask, error) {
	body, err := extractJSONArray(raw)
	if err != nil {
		return nil, err
	}

	var tasks []ProposedTask
	if err := json.Unmarshal([]byte(body), &tasks); err != nil {
		return nil, fmt.Errorf("parse task array: %w", err)
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("empty task array")
	}
	for i, t := range tasks {
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("task %d has no title", i+1)
		}
	}
	return tasks, nil
}

// parseTaskListLoose degrades to line splitting: each non-empty line
// becomes a title-only task, with list markers and numbering stripped.
func parseTaskListLoose(raw string) []ProposedTask {
	var tasks []ProposedTask
	for _, line := range strings.Split(raw, "\n") {
		title := stripListMarker(line)
		if title == "" {
			continue
		}
		tasks = append(tasks, ProposedTask{Title: title, LowConfidence: true})
	}
	return tasks
}

// ParseTitleList parses a response into plain titles with the same
// strict-then-fallback pipeline.
func ParseTitleList(raw string) ([]string, error) {
	if body, err := extractJSONArray(raw); err == nil {
		var titles []string
		if err := json.Unmarshal([]byte(body), &titles); err == nil && len(titles) > 0 {
			for i, title := range titles {
				titles[i] = strings.TrimSpace(title)
				if titles[i] == "" {
					return nil, fmt.Errorf("title %d is empty", i+1)
				}
			}
			return titles, nil
		}
	}

	var titles []string
	for _, line := range strings.Split(raw, "\n") {
		if title := stripListMarker(line); title != "" {
			titles = append(titles, title)
		}
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("response contains no parseable titles")
	}
	return titles, nil
}

// extractJSONArray finds the outermost JSON array in a response,
// tolerating surrounding prose and markdown fences.
func extractJSONArray(raw string) (string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON array in response")
	}
	return raw[start : end+1], nil
}

func stripListMarker(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "-*>")
	s = strings.TrimSpace(s)
	// Strip "1." / "12)" style numbering
	for i, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		if (r == '.' || r == ')') && i > 0 {
			s = strings.TrimSpace(s[i+1:])
		}
		break
	}
	// Ignore fence lines and prose-looking leftovers that are just
	// punctuation
	if s == "" || strings.HasPrefix(s, "```") || strings.Trim(s, "[]{},\"") == "" {
		return ""
	}
	return s
}
