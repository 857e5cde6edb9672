package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitsumm/gitsumm/internal/config"
	"github.com/gitsumm/gitsumm/internal/render"
)

var (
	defaultsRecent int
	defaultsBranch string
	defaultsFormat string
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show or change default settings",
	Long: `Show the persisted default settings, or change them.

Example:
  gitsumm defaults                 Show current defaults
  gitsumm defaults --recent 10     Summarize 10 commits by default
  gitsumm defaults --format json   Emit JSON by default`,
	Args: cobra.NoArgs,
	RunE: runDefaults,
}

func init() {
	defaultsCmd.Flags().IntVar(&defaultsRecent, "recent", 0, "default number of commits for 'recent'")
	defaultsCmd.Flags().StringVar(&defaultsBranch, "branch", "", "default base branch for 'compare'")
	defaultsCmd.Flags().StringVar(&defaultsFormat, "format", "", "default output format: text, markdown, or json")

	rootCmd.AddCommand(defaultsCmd)
}

func runDefaults(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}

	out := cmd.OutOrStdout()

	changed := false

	if cmd.Flags().Changed("recent") {
		if defaultsRecent <= 0 {
			return fmt.Errorf("invalid commit count %d (must be positive)", defaultsRecent)
		}
		cfg.Defaults.RecentCommits = defaultsRecent
		changed = true
	}
	if cmd.Flags().Changed("branch") {
		if defaultsBranch == "" {
			return fmt.Errorf("branch name cannot be empty")
		}
		cfg.Defaults.CompareBranch = defaultsBranch
		changed = true
	}
	if cmd.Flags().Changed("format") {
		if _, err := render.ParseFormat(defaultsFormat); err != nil {
			return err
		}
		cfg.Defaults.OutputFormat = defaultsFormat
		changed = true
	}

	if !changed {
		fmt.Fprintln(out, "Current defaults:")
		fmt.Fprintf(out, "  recent commits: %d\n", cfg.Defaults.RecentCommits)
		fmt.Fprintf(out, "  compare branch: %s\n", cfg.Defaults.CompareBranch)
		fmt.Fprintf(out, "  output format:  %s\n", cfg.Defaults.OutputFormat)

		if path, err := config.Path(); err == nil {
			fmt.Fprintf(out, "\nConfig file: %s\n", path)
		}
		return nil
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "Defaults updated")
	return nil
}
