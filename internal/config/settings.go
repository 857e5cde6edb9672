package config

import "os"

// Settings is the effective configuration for a single invocation, built by
// merging environment overrides over the persisted config. It is constructed
// once per command and passed explicitly; nothing mutates it afterwards.
type Settings struct {
	// Provider is the provider to invoke.
	Provider string

	// Model is the model to request from the provider.
	Model string

	// RecentCommits is the default commit count for `recent`.
	RecentCommits int

	// CompareBranch is the default base branch.
	CompareBranch string

	// OutputFormat is the default output format.
	OutputFormat string
}

// Environment variables that override persisted settings.
const (
	EnvProvider = "GITSUMM_PROVIDER"
	EnvModel    = "GITSUMM_MODEL"
)

// Resolve merges environment overrides over the persisted configuration and
// returns the per-invocation settings.
func (c *Config) Resolve() Settings {
	s := Settings{
		Provider:      c.Provider,
		RecentCommits: c.Defaults.RecentCommits,
		CompareBranch: c.Defaults.CompareBranch,
		OutputFormat:  c.Defaults.OutputFormat,
	}

	if v := os.Getenv(EnvProvider); v != "" {
		s.Provider = v
	}

	s.Model = c.ModelFor(s.Provider)
	if v := os.Getenv(EnvModel); v != "" {
		s.Model = v
	}

	return s
}
