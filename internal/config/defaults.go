package config

import (
	"os"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Tasks: TasksConfig{
			File: ".taskforge/tasks.yaml",
		},
		Generate: GenerateConfig{
			OutputDir: ".taskforge/tasks",
		},
		LLM: LLMConfig{
			Binary:         "claude",
			TimeoutSeconds: 120,
		},
		History: HistoryConfig{
			Enabled: true,
			File:    ".taskforge/history.db",
			Limit:   20,
		},
	}
}

// WriteProjectDefault writes the default project configuration to a file
func WriteProjectDefault(path string) error {
	content := `# taskforge project configuration
version: "1"

# Project information
project:
  name: ""  # Auto-detected from directory name if empty

# Persisted task document
tasks:
  file: .taskforge/tasks.yaml

# Per-task markdown output for the generate command
generate:
  output_dir: .taskforge/tasks

# Text-generation collaborator (parse-prd, expand, revise)
llm:
  binary: claude
  # model: claude-sonnet-4-5
  timeout_seconds: 120

# Mutation history
history:
  enabled: true
  file: .taskforge/history.db
  limit: 20
`
	return os.WriteFile(path, []byte(content), 0644)
}
