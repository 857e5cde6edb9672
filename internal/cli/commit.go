package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitsumm/gitsumm/internal/summarizer"
)

var commitFormat string

var commitCmd = &cobra.Command{
	Use:   "commit <sha>",
	Short: "Summarize a single commit",
	Long: `Summarize the changes introduced by one commit, including its diff.

Example:
  gitsumm commit abc1234
  gitsumm commit HEAD~2`,
	Args: cobra.ExactArgs(1),
	RunE: runCommit,
}

func init() {
	commitCmd.Flags().StringVar(&commitFormat, "format", "", "output format: text, markdown, or json (default from config)")

	rootCmd.AddCommand(commitCmd)
}

func runCommit(cmd *cobra.Command, args []string) error {
	ref := args[0]

	return runSummary(cmd, commitFormat, fmt.Sprintf("Commit %s", ref),
		func(ctx context.Context, s *summarizer.Summarizer) (string, error) {
			return s.Commit(ctx, ref)
		})
}
