package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskforge/internal/config"
	"github.com/jyang234/taskforge/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a taskforge project in the current directory",
	Long: `Creates .taskforge/ with a default configuration and an empty task
document. Safe to re-run: existing files are left alone unless --force
is given.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing configuration and task document")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	if err := os.MkdirAll(config.ProjectDirPath(), 0755); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}

	configPath := config.ProjectConfigPath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) || force {
		if err := config.WriteProjectDefault(configPath); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Println("  Created", configPath)
	}

	path := tasksPath()
	_, err := store.Load(path)
	switch {
	case err == nil && !force:
		fmt.Println("  Task document already exists:", path)
	case err == nil || errors.Is(err, os.ErrNotExist) || force:
		if err := store.Save(path, store.New()); err != nil {
			return fmt.Errorf("write task document: %w", err)
		}
		fmt.Println("  Created", path)
	default:
		return err
	}

	fmt.Println("\ntaskforge initialized.")
	return nil
}
