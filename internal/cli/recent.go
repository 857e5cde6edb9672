package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitsumm/gitsumm/internal/summarizer"
)

var (
	recentCount  int
	recentBranch string
	recentFormat string
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Summarize the most recent commits",
	Long: `Summarize the most recent commits on a branch.

Uses the configured default commit count unless -n is given, and the current
branch unless -b is given.

Example:
  gitsumm recent              Summarize the default number of commits
  gitsumm recent -n 10        Summarize the last 10 commits
  gitsumm recent -b develop   Summarize recent commits on develop`,
	Args: cobra.NoArgs,
	RunE: runRecent,
}

func init() {
	recentCmd.Flags().IntVarP(&recentCount, "number", "n", 0, "number of commits to summarize (default from config)")
	recentCmd.Flags().StringVarP(&recentBranch, "branch", "b", "", "branch to summarize (default: current branch)")
	recentCmd.Flags().StringVar(&recentFormat, "format", "", "output format: text, markdown, or json (default from config)")

	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}
	settings := cfg.Resolve()

	n := recentCount
	if n <= 0 {
		n = settings.RecentCommits
	}

	title := fmt.Sprintf("Last %d commits", n)
	if recentBranch != "" {
		title = fmt.Sprintf("Last %d commits on %s", n, recentBranch)
	}

	return runSummary(cmd, recentFormat, title,
		func(ctx context.Context, s *summarizer.Summarizer) (string, error) {
			return s.RecentCommits(ctx, n, recentBranch)
		})
}
