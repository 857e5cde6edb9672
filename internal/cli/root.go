// Package cli provides the command-line interface for gitsumm.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitsumm/gitsumm/internal/config"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Commit is set at build time.
	Commit = "none"

	// Date is set at build time.
	Date = "unknown"
)

var (
	verbose bool
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gitsumm",
	Short: "AI-powered git history summarizer",
	Long: `Gitsumm summarizes git history in plain language using an LLM provider.

It collects commit logs and diffs with git, sends them to the configured
provider (Groq, OpenAI, Gemini, Anthropic, or a local Ollama instance), and
prints the generated summary.

Example:
  gitsumm setup              Configure a provider interactively
  gitsumm recent -n 10       Summarize the last 10 commits
  gitsumm compare main dev   Summarize what dev adds over main`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for help and version commands
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the loaded configuration. Only valid after command execution starts.
func GetConfig() *config.Config {
	return cfg
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

// SetVersionInfo sets the version information for the CLI.
// This is called from main() with values set at build time.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// Verbose prints a message if verbose mode is enabled.
func Verbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
