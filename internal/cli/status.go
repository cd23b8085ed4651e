package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskforge/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <newStatus>",
	Short: "Set the status of a task or subtask",
	Long: `Sets the status of a task (by id, e.g. "3") or a subtask (by
<taskId>.<index>, e.g. "3.2"). Valid statuses are todo, inprogress,
done, and blocked.

A task cannot be set to done while any of its subtasks remain open.`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	status, err := store.ParseStatus(args[1])
	if err != nil {
		return err
	}

	s, err := loadStore()
	if err != nil {
		return err
	}

	ref := args[0]
	if strings.Contains(ref, ".") {
		if err := s.SetSubtaskStatus(ref, status); err != nil {
			return err
		}
	} else {
		id, err := parseTaskID(ref)
		if err != nil {
			return err
		}
		if err := s.SetStatus(id, status); err != nil {
			return err
		}
	}

	if err := saveStore(s); err != nil {
		return err
	}

	record("status", ref, string(status))
	fmt.Printf("%s -> %s\n", ref, status)
	return nil
}
