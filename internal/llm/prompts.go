package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jyang234/taskforge/internal/store"
)

func taskListPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Break the following document into an ordered list of development tasks.\n")
	b.WriteString("Respond with only a JSON array; each element has the shape\n")
	b.WriteString(`{"title": string, "description": string, "priority": "high"|"medium"|"low", "dependsOn": [int]}` + "\n")
	b.WriteString("where dependsOn holds 1-based positions within this list.\n\n")
	b.WriteString("Document:\n")
	b.WriteString(text)
	return b.String()
}

func subtaskPrompt(task *store.Task) string {
	var b strings.Builder
	b.WriteString("Break the following task into concrete subtasks.\n")
	b.WriteString("Respond with only a JSON array of subtask title strings.\n\n")
	fmt.Fprintf(&b, "Task %d: %s\n", task.ID, task.Title)
	if task.Description != "" {
		b.WriteString(task.Description)
		b.WriteString("\n")
	}
	return b.String()
}

func revisionPrompt(change, pastSummary string, future []store.Task) string {
	futureJSON, _ := json.MarshalIndent(future, "", "  ")

	var b strings.Builder
	b.WriteString("Revise the upcoming tasks below according to the requested change.\n")
	b.WriteString("Respond with only a JSON array; each element has the shape\n")
	b.WriteString(`{"id": int, "title": string, "description": string, "priority": "high"|"medium"|"low", "dependsOn": [int]}` + "\n")
	b.WriteString("Keep ids at or above the smallest id in the upcoming list. Dependencies may\n")
	b.WriteString("reference completed tasks or other tasks in your answer, nothing else.\n\n")
	b.WriteString("Requested change:\n")
	b.WriteString(change)
	b.WriteString("\n\nCompleted and in-progress context:\n")
	b.WriteString(pastSummary)
	b.WriteString("\n\nUpcoming tasks:\n")
	b.Write(futureJSON)
	return b.String()
}

// PastSummary renders the past segment for the revision prompt.
func PastSummary(past []store.Task) string {
	var b strings.Builder
	for _, t := range past {
		fmt.Fprintf(&b, "- [%s] %d: %s\n", t.Status, t.ID, t.Title)
	}
	return b.String()
}
