package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitsumm/gitsumm/internal/summarizer"
)

var compareFormat string

var compareCmd = &cobra.Command{
	Use:   "compare [base] <head>",
	Short: "Summarize the difference between two branches",
	Long: `Summarize the commits and changes that head adds over base.

With one argument, the configured default compare branch is used as base.

Example:
  gitsumm compare main feature/login
  gitsumm compare feature/login          Compare against the default base`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareFormat, "format", "", "output format: text, markdown, or json (default from config)")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}
	settings := cfg.Resolve()

	var base, head string
	if len(args) == 2 {
		base, head = args[0], args[1]
	} else {
		base, head = settings.CompareBranch, args[0]
	}

	return runSummary(cmd, compareFormat, fmt.Sprintf("Comparison of %s and %s", base, head),
		func(ctx context.Context, s *summarizer.Summarizer) (string, error) {
			return s.CompareBranches(ctx, base, head)
		})
}
