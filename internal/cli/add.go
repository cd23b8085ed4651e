package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskforge/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var addSubtaskCmd = &cobra.Command{
	Use:   "add-subtask <taskId> <title>",
	Short: "Add a subtask under a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddSubtask,
}

func init() {
	addCmd.Flags().String("desc", "", "Task description")
	addCmd.Flags().String("priority", "medium", "Task priority: high, medium, or low")
	addCmd.Flags().IntSlice("deps", nil, "Task ids this task depends on")
}

func runAdd(cmd *cobra.Command, args []string) error {
	desc, _ := cmd.Flags().GetString("desc")
	priorityFlag, _ := cmd.Flags().GetString("priority")
	deps, _ := cmd.Flags().GetIntSlice("deps")

	priority, err := store.ParsePriority(priorityFlag)
	if err != nil {
		return err
	}

	s, err := loadStore()
	if err != nil {
		return err
	}

	task, err := s.Add(args[0], desc, priority, deps)
	if err != nil {
		return err
	}
	if err := saveStore(s); err != nil {
		return err
	}

	record("add", fmt.Sprintf("%d", task.ID), task.Title)
	fmt.Printf("Added task %d: %s\n", task.ID, task.Title)
	return nil
}

func runAddSubtask(cmd *cobra.Command, args []string) error {
	parentID, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	s, err := loadStore()
	if err != nil {
		return err
	}

	id, err := s.AddSubtask(parentID, args[1])
	if err != nil {
		return err
	}
	if err := saveStore(s); err != nil {
		return err
	}

	record("add-subtask", id, args[1])
	fmt.Printf("Added subtask %s: %s\n", id, args[1])
	return nil
}
