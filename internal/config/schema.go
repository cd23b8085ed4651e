package config

// Config represents the full taskforge configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Tasks document settings
	Tasks TasksConfig `yaml:"tasks" mapstructure:"tasks"`

	// Per-task markdown generation
	Generate GenerateConfig `yaml:"generate" mapstructure:"generate"`

	// Text-generation collaborator
	LLM LLMConfig `yaml:"llm" mapstructure:"llm"`

	// Mutation history
	History HistoryConfig `yaml:"history" mapstructure:"history"`

	// Project-specific settings (only in project config)
	Project ProjectConfig `yaml:"project" mapstructure:"project"`
}

// TasksConfig locates the persisted task document
type TasksConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// GenerateConfig configures per-task markdown generation
type GenerateConfig struct {
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir"`
}

// LLMConfig configures the text-generation collaborator
type LLMConfig struct {
	Binary         string `yaml:"binary" mapstructure:"binary"`
	Model          string `yaml:"model" mapstructure:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// HistoryConfig configures the mutation history log
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	File    string `yaml:"file" mapstructure:"file"`
	Limit   int    `yaml:"limit" mapstructure:"limit"`
}

// ProjectConfig holds project-specific settings
type ProjectConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
}
