package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a task or subtask",
	Long: `Removes a task (and all its subtasks) or a single subtask. Removing a
task also strips it from every other task's dependency list; its id is
never reused.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	s, err := loadStore()
	if err != nil {
		return err
	}

	ref := args[0]
	if strings.Contains(ref, ".") {
		if err := s.RemoveSubtask(ref); err != nil {
			return err
		}
	} else {
		id, err := parseTaskID(ref)
		if err != nil {
			return err
		}
		if err := s.Remove(id); err != nil {
			return err
		}
	}

	if err := saveStore(s); err != nil {
		return err
	}

	record("remove", ref, "")
	fmt.Printf("Removed %s\n", ref)
	return nil
}
