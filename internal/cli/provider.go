package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitsumm/gitsumm/internal/provider"
)

var listProviders bool

var providerCmd = &cobra.Command{
	Use:   "provider [name]",
	Short: "Show, list, or switch the active provider",
	Long: `Show the active provider, list the available ones, or switch to another.

Example:
  gitsumm provider           Show the active provider
  gitsumm provider -l        List all available providers
  gitsumm provider ollama    Switch to Ollama`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProvider,
}

func init() {
	providerCmd.Flags().BoolVarP(&listProviders, "list", "l", false, "list available providers")

	rootCmd.AddCommand(providerCmd)
}

func runProvider(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}

	out := cmd.OutOrStdout()

	if listProviders {
		active := cfg.Resolve().Provider
		for _, name := range registry.List() {
			marker := " "
			if name == active {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, name)
		}
		return nil
	}

	if len(args) == 0 {
		fmt.Fprintln(out, cfg.Resolve().Provider)
		return nil
	}

	// Validate before touching the config file.
	name := args[0]
	if !registry.Has(name) {
		return &provider.UnknownProviderError{Name: name, Available: registry.List()}
	}

	cfg.Provider = name
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(out, "Active provider set to %s\n", name)
	return nil
}
