package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitsumm/gitsumm/internal/summarizer"
)

var (
	timeBranch string
	timeFormat string
)

var timeCmd = &cobra.Command{
	Use:   "time <start> <end>",
	Short: "Summarize commits in a date range",
	Long: `Summarize the commits authored between two dates (YYYY-MM-DD).

Example:
  gitsumm time 2026-01-01 2026-02-01
  gitsumm time 2026-01-01 2026-02-01 -b develop`,
	Args: cobra.ExactArgs(2),
	RunE: runTime,
}

func init() {
	timeCmd.Flags().StringVarP(&timeBranch, "branch", "b", "", "branch to summarize (default: current branch)")
	timeCmd.Flags().StringVar(&timeFormat, "format", "", "output format: text, markdown, or json (default from config)")

	rootCmd.AddCommand(timeCmd)
}

func runTime(cmd *cobra.Command, args []string) error {
	since, until := args[0], args[1]

	return runSummary(cmd, timeFormat, fmt.Sprintf("Commits between %s and %s", since, until),
		func(ctx context.Context, s *summarizer.Summarizer) (string, error) {
			return s.TimeRange(ctx, since, until, timeBranch)
		})
}
