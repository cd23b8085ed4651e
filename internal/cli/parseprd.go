package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskforge/internal/llm"
)

var parsePRDCmd = &cobra.Command{
	Use:   "parse-prd <file>",
	Short: "Generate tasks from a requirements document",
	Long: `Feeds a requirements document to the text-generation service and
appends the proposed tasks to the task document. The proposal is
validated in full (titles, priorities, dependency references) before
anything is written; on any failure the document is left unchanged.

Dependency references in the generated list are positions within that
list and are translated into real task ids on insertion.`,
	Args: cobra.ExactArgs(1),
	RunE: runParsePRD,
}

func runParsePRD(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	s, err := loadStore()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Println("Generating tasks...")
	}
	proposed, err := newGenerator().GenerateTasks(cmd.Context(), string(text))
	if err != nil {
		return err
	}

	tasks, err := llm.NewTasksFromProposal(s, proposed)
	if err != nil {
		return err
	}

	s.Tasks = append(s.Tasks, tasks...)
	if err := saveStore(s); err != nil {
		return err
	}

	lowConfidence := 0
	for _, p := range proposed {
		if p.LowConfidence {
			lowConfidence++
		}
	}

	record("parse-prd", "", fmt.Sprintf("added %d tasks from %s", len(tasks), args[0]))
	fmt.Printf("Added %d tasks (%d..%d)\n", len(tasks), tasks[0].ID, tasks[len(tasks)-1].ID)
	if lowConfidence > 0 {
		fmt.Printf("Note: %d entries were recovered by fallback parsing; review their titles.\n", lowConfidence)
	}
	return nil
}
