package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskforge/internal/engine"
	"github.com/jyang234/taskforge/internal/llm"
	"github.com/jyang234/taskforge/internal/store"
)

var reviseCmd = &cobra.Command{
	Use:   "revise --from <id> --prompt <text>",
	Short: "Revise the not-yet-started portion of the task list",
	Long: `Asks the text-generation service to rework the future segment of the
task list (tasks with id at or above --from) according to the change
described by --prompt. Tasks below --from are the immutable past
segment and are never touched.

The proposal is validated in full before the splice: every proposed
task needs an id inside the future range and a title, and every
dependency must resolve into the past segment or the proposal itself.
All violations are reported at once and any failure leaves the task
document unchanged.`,
	RunE: runRevise,
}

func init() {
	reviseCmd.Flags().Int("from", 0, "First task id of the future segment")
	reviseCmd.Flags().String("prompt", "", "Description of the requested change")
	reviseCmd.MarkFlagRequired("from")
	reviseCmd.MarkFlagRequired("prompt")
}

func runRevise(cmd *cobra.Command, args []string) error {
	fromID, _ := cmd.Flags().GetInt("from")
	changePrompt, _ := cmd.Flags().GetString("prompt")

	if fromID < 1 {
		return fmt.Errorf("--from must be a positive task id")
	}

	s, err := loadStore()
	if err != nil {
		return err
	}

	var past, future []store.Task
	for _, t := range s.Tasks {
		if t.ID < fromID {
			past = append(past, t)
		} else {
			future = append(future, t)
		}
	}

	if verbose {
		fmt.Printf("Revising %d upcoming tasks...\n", len(future))
	}
	proposed, err := newGenerator().ReviseTasks(cmd.Context(), changePrompt, llm.PastSummary(past), future)
	if err != nil {
		return err
	}

	replacement, err := llm.FutureTasksFromProposal(proposed)
	if err != nil {
		return err
	}

	if err := engine.MergeRevision(s, fromID, replacement); err != nil {
		return err
	}
	if err := saveStore(s); err != nil {
		return err
	}

	recordRevision(fromID, len(replacement))
	fmt.Printf("Replaced %d upcoming tasks with %d revised tasks (from id %d)\n",
		len(future), len(replacement), fromID)
	return nil
}
