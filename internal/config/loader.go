package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads and merges configuration from global and project sources
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Return defaults if no home dir
	}

	cwd, err := os.Getwd()
	if err != nil {
		return cfg, nil // Return defaults if no cwd
	}

	// Load global config first
	globalPath := filepath.Join(home, ".taskforge", "config.yaml")
	if err := loadFile(globalPath, cfg); err != nil && !os.IsNotExist(err) {
		// Continue with defaults
	}

	// Load project config (overrides global)
	projectPath := filepath.Join(cwd, ".taskforge", "config.yaml")
	if err := loadFile(projectPath, cfg); err != nil && !os.IsNotExist(err) {
		// Continue
	}

	// Auto-detect project name if not set
	if cfg.Project.Name == "" {
		cfg.Project.Name = filepath.Base(cwd)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, ".taskforge", "config.yaml")
}

// ProjectDirPath returns the path to the project .taskforge directory
func ProjectDirPath() string {
	cwd, _ := os.Getwd()
	return filepath.Join(cwd, ".taskforge")
}
