package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand <taskId>",
	Short: "Generate subtasks for a task",
	Long: `Asks the text-generation service to break one task into subtasks and
appends them under the task. On any generation failure the task
document is left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func runExpand(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	s, err := loadStore()
	if err != nil {
		return err
	}

	task := s.Find(id)
	if task == nil {
		return fmt.Errorf("no such task: %d", id)
	}

	if verbose {
		fmt.Printf("Expanding task %d...\n", id)
	}
	titles, err := newGenerator().GenerateSubtasks(cmd.Context(), task)
	if err != nil {
		return err
	}

	var added []string
	for _, title := range titles {
		subtaskID, err := s.AddSubtask(id, title)
		if err != nil {
			return err
		}
		added = append(added, subtaskID)
	}

	if err := saveStore(s); err != nil {
		return err
	}

	record("expand", strconv.Itoa(id), fmt.Sprintf("added %d subtasks", len(added)))
	fmt.Printf("Added %d subtasks to task %d:\n", len(added), id)
	for i, subtaskID := range added {
		fmt.Printf("  %s %s\n", subtaskID, titles[i])
	}
	return nil
}
