package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gitsumm/gitsumm/internal/config"
	"github.com/gitsumm/gitsumm/internal/git"
	"github.com/gitsumm/gitsumm/internal/provider"
	"github.com/gitsumm/gitsumm/internal/render"
	"github.com/gitsumm/gitsumm/internal/summarizer"
)

// runSummary drives one summarization command: resolve settings, open the
// repository, construct the provider, generate, render. gen is the
// command-specific call into the summarizer; title labels the output.
func runSummary(cmd *cobra.Command, formatFlag, title string,
	gen func(ctx context.Context, s *summarizer.Summarizer) (string, error)) error {

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := GetConfig()
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}
	settings := cfg.Resolve()

	format := settings.OutputFormat
	if formatFlag != "" {
		format = formatFlag
	}
	outFormat, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	Verbose("Opening git repository...")
	repo, err := git.NewRepository("")
	if err != nil {
		if errors.Is(err, git.ErrNotARepository) {
			return fmt.Errorf("not in a git repository")
		}
		return fmt.Errorf("opening repository: %w", err)
	}

	Verbose("Initializing provider %s...", settings.Provider)
	p, err := buildProvider(cfg, settings)
	if err != nil {
		return err
	}

	s := summarizer.New(repo, p)

	stop := startSpinner(fmt.Sprintf(" Summarizing with %s...", p.Name()))
	summary, err := gen(ctx, s)
	stop()
	if err != nil {
		return err
	}

	if summary == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No commits found to summarize.")
		return nil
	}

	renderOpts := render.DefaultOptions()
	renderOpts.Format = outFormat
	renderOpts.Output = cmd.OutOrStdout()
	renderOpts.ColorEnabled = term.IsTerminal(int(os.Stdout.Fd()))
	renderer := render.New(renderOpts)
	return renderer.Render(&render.Summary{
		Title:    title,
		Provider: p.Name(),
		Model:    settings.Model,
		Text:     summary,
	})
}

// buildProvider constructs the active provider from resolved settings,
// resolving the credential first.
func buildProvider(cfg *config.Config, settings config.Settings) (provider.Provider, error) {
	needsKey, err := registry.NeedsCredential(settings.Provider)
	if err != nil {
		return nil, err
	}

	apiKey, err := cfg.APIKeyFor(settings.Provider, needsKey)
	if err != nil {
		return nil, err
	}

	return registry.New(settings.Provider, provider.Options{
		APIKey: apiKey,
		Model:  settings.Model,
	})
}

// startSpinner shows a spinner on stderr while the provider call is in
// flight. The returned func stops it. No-op when stderr is not a terminal.
func startSpinner(suffix string) func() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}

	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = suffix
	sp.Start()
	return sp.Stop
}
