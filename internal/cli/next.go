package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskforge/internal/engine"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next actionable task",
	Long: `Selects the single task to work on next: the highest-priority todo
task whose dependencies are all done, with the lowest id breaking ties.
The selection is deterministic for identical task documents.`,
	RunE: runNext,
}

func runNext(cmd *cobra.Command, args []string) error {
	s, err := loadStore()
	if err != nil {
		return err
	}

	task, err := engine.SelectNext(s)
	if err != nil {
		return err
	}
	if task == nil {
		fmt.Println("No actionable task.")
		return nil
	}

	printTask(task)
	return nil
}
