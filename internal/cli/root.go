package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskforge/internal/config"
)

var (
	verbose bool
	cfg     *config.Config
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "taskforge",
		Short: "taskforge - dependency-aware task tracking",
		Long: `taskforge tracks units of work and their subtasks in a persisted task graph
with dependency constraints, a status lifecycle, and priority ordering.

It can break a requirements document into tasks, expand a task into
subtasks, and revise the not-yet-started portion of the plan, using a
text-generation service whose output is validated before anything is
written.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command
func Execute(version string) error {
	cfg, _ = config.Load()

	// Add subcommands here to ensure proper initialization order
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(addSubtaskCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(parsePRDCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(reviseCmd)
	rootCmd.AddCommand(historyCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
