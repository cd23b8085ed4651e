package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskforge/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write per-task markdown files",
	Long: `Renders one markdown file per task plus an index README into the
configured output directory. Files for removed tasks are cleaned up;
the task document stays the single source of truth.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := loadStore()
	if err != nil {
		return err
	}

	outputDir := resolvePath(cfg.Generate.OutputDir)
	if err := render.WriteTaskFiles(s, outputDir); err != nil {
		return err
	}

	fmt.Printf("Wrote %d task files to %s\n", len(s.Tasks), outputDir)
	return nil
}
