// Package config provides configuration management for the gitsumm CLI.
package config

const (
	// DefaultProvider is the provider used when none has been configured.
	DefaultProvider = "groq"

	// DefaultRecentCommits is the number of commits summarized by `recent`.
	DefaultRecentCommits = 5

	// DefaultCompareBranch is the base branch used when none is given.
	DefaultCompareBranch = "main"

	// DefaultOutputFormat is the output format used when none is configured.
	DefaultOutputFormat = "text"

	// DefaultConfigDir is the directory name for gitsumm configuration.
	DefaultConfigDir = ".config/gitsumm"

	// DefaultConfigFile is the configuration file name.
	DefaultConfigFile = "config.json"
)

// DefaultModels maps each provider to the model used when the user has not
// picked one.
var DefaultModels = map[string]string{
	"groq":      "llama-3.1-8b-instant",
	"openai":    "gpt-4o",
	"gemini":    "gemini-2.0-flash",
	"anthropic": "claude-sonnet-4-20250514",
	"ollama":    "llama3",
}

// DefaultConfig returns a Config with built-in defaults and empty key maps.
func DefaultConfig() *Config {
	prefs := make(map[string]string, len(DefaultModels))
	for name, model := range DefaultModels {
		prefs[name] = model
	}

	return &Config{
		Provider:         DefaultProvider,
		APIKeys:          map[string]string{},
		ModelPreferences: prefs,
		Defaults: Defaults{
			RecentCommits: DefaultRecentCommits,
			CompareBranch: DefaultCompareBranch,
			OutputFormat:  DefaultOutputFormat,
		},
	}
}
