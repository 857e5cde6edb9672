package cli

import (
	"github.com/gitsumm/gitsumm/internal/provider"
	"github.com/gitsumm/gitsumm/internal/provider/anthropic"
	"github.com/gitsumm/gitsumm/internal/provider/gemini"
	"github.com/gitsumm/gitsumm/internal/provider/groq"
	"github.com/gitsumm/gitsumm/internal/provider/ollama"
	"github.com/gitsumm/gitsumm/internal/provider/openai"
)

// registry holds the closed set of supported backends. Assembled once at
// startup; commands look providers up by name.
var registry = newRegistry()

func newRegistry() *provider.Registry {
	r := provider.NewRegistry()

	r.Register("groq", true, func(opts provider.Options) (provider.Provider, error) {
		return groq.New(opts.APIKey, opts.Model)
	})
	r.Register("openai", true, func(opts provider.Options) (provider.Provider, error) {
		return openai.New(opts.APIKey, opts.Model)
	})
	r.Register("gemini", true, func(opts provider.Options) (provider.Provider, error) {
		return gemini.New(opts.APIKey, opts.Model)
	})
	r.Register("anthropic", true, func(opts provider.Options) (provider.Provider, error) {
		return anthropic.New(opts.APIKey, opts.Model)
	})

	// Ollama runs locally and needs no credential.
	r.Register("ollama", false, func(opts provider.Options) (provider.Provider, error) {
		return ollama.New(opts.Model)
	})

	return r
}

// providerLabels maps provider names to display labels for the setup wizard.
var providerLabels = map[string]string{
	"groq":      "Groq",
	"openai":    "OpenAI",
	"gemini":    "Google Gemini",
	"anthropic": "Anthropic (Claude)",
	"ollama":    "Ollama (local)",
}
