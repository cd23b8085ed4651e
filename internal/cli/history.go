package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskforge/internal/audit"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent task graph mutations",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "Number of entries to show (default from config)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled in configuration")
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = cfg.History.Limit
	}

	log, err := audit.Open(resolvePath(cfg.History.File))
	if err != nil {
		return err
	}
	defer log.Close()

	entries, err := log.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No history.")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-12s %-6s %s",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Op, e.TaskRef, e.Detail)
		if e.RevisionID != "" {
			line += "  [" + e.RevisionID + "]"
		}
		fmt.Println(line)
	}
	return nil
}
