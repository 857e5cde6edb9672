package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gitsumm/gitsumm/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure gitsumm interactively",
	Long: `Walk through provider selection, API key entry, and model choice,
then save the configuration.

The API key step is skipped for providers that need no credential (ollama).`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("setup requires an interactive terminal")
	}

	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}

	names := registry.List()
	options := make([]huh.Option[string], len(names))
	for i, name := range names {
		label := providerLabels[name]
		if label == "" {
			label = name
		}
		options[i] = huh.NewOption(label, name)
	}

	providerName := cfg.Provider
	providerForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("LLM provider").
				Description("Which backend should generate summaries?").
				Options(options...).
				Value(&providerName),
		),
	)
	if err := providerForm.Run(); err != nil {
		return fmt.Errorf("provider selection: %w", err)
	}

	needsKey, err := registry.NeedsCredential(providerName)
	if err != nil {
		return err
	}

	// The key and model prompts depend on the chosen provider, so they run
	// as a second form.
	apiKey := cfg.APIKeys[providerName]
	model := cfg.ModelFor(providerName)

	var enteredKey string
	var fields []huh.Field

	if needsKey {
		keyTitle := fmt.Sprintf("%s API key", providerLabels[providerName])
		keyDesc := fmt.Sprintf("Also settable via %s", config.EnvAPIKey(providerName))
		if apiKey != "" {
			keyDesc = fmt.Sprintf("Currently %s; leave empty to keep it", config.MaskKey(apiKey))
		}

		fields = append(fields, huh.NewInput().
			Title(keyTitle).
			Description(keyDesc).
			EchoMode(huh.EchoModePassword).
			Value(&enteredKey).
			Validate(func(s string) error {
				if s == "" && apiKey == "" {
					return fmt.Errorf("an API key is required for %s", providerName)
				}
				return nil
			}))
	}

	fields = append(fields, huh.NewInput().
		Title("Model").
		Description("Model name to request").
		Placeholder(config.DefaultModels[providerName]).
		Value(&model))

	detailsForm := huh.NewForm(huh.NewGroup(fields...))
	if err := detailsForm.Run(); err != nil {
		return fmt.Errorf("setup form: %w", err)
	}

	if enteredKey != "" {
		apiKey = enteredKey
	}

	cfg.Provider = providerName
	if needsKey && apiKey != "" {
		cfg.SetAPIKey(providerName, apiKey)
	}
	if model != "" {
		cfg.SetModel(providerName, model)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
	return nil
}
