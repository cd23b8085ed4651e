package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskforge/internal/store"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task's fields",
	Long: `Updates title, description, priority, or dependencies of a task.
Only the flags given are changed; --deps replaces the whole dependency
list (pass --deps with no values to clear it).`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().String("title", "", "New title")
	updateCmd.Flags().String("desc", "", "New description")
	updateCmd.Flags().String("priority", "", "New priority: high, medium, or low")
	updateCmd.Flags().IntSlice("deps", nil, "Replacement dependency list")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	var u store.Update
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		u.Title = &title
	}
	if cmd.Flags().Changed("desc") {
		desc, _ := cmd.Flags().GetString("desc")
		u.Description = &desc
	}
	if cmd.Flags().Changed("priority") {
		raw, _ := cmd.Flags().GetString("priority")
		priority, err := store.ParsePriority(raw)
		if err != nil {
			return err
		}
		u.Priority = &priority
	}
	if cmd.Flags().Changed("deps") {
		deps, _ := cmd.Flags().GetIntSlice("deps")
		if deps == nil {
			deps = []int{}
		}
		u.DependsOn = deps
	}

	if u.Title == nil && u.Description == nil && u.Priority == nil && u.DependsOn == nil {
		return fmt.Errorf("nothing to update: pass at least one of --title, --desc, --priority, --deps")
	}

	s, err := loadStore()
	if err != nil {
		return err
	}

	if err := s.Apply(id, u); err != nil {
		return err
	}
	if err := saveStore(s); err != nil {
		return err
	}

	record("update", args[0], "")
	fmt.Printf("Updated task %d\n", id)
	return nil
}
