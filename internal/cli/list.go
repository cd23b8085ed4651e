package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskforge/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("status", "", "Only show tasks with this status")
}

func runList(cmd *cobra.Command, args []string) error {
	statusFlag, _ := cmd.Flags().GetString("status")

	s, err := loadStore()
	if err != nil {
		return err
	}

	tasks := s.Tasks
	if statusFlag != "" {
		status, err := store.ParseStatus(statusFlag)
		if err != nil {
			return err
		}
		tasks = s.ByStatus(status)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	for i := range tasks {
		printTask(&tasks[i])
	}

	total, done, inProgress, todo, blocked := s.Stats()
	fmt.Printf("\n%d tasks: %d done, %d in progress, %d todo, %d blocked\n",
		total, done, inProgress, todo, blocked)
	return nil
}
