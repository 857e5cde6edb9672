package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the persisted configuration for the gitsumm CLI.
type Config struct {
	// Provider is the active LLM provider name (e.g., "groq", "openai").
	Provider string `json:"provider,omitempty"`

	// APIKeys maps provider names to stored API keys. Entries may exist for
	// providers other than the active one.
	APIKeys map[string]string `json:"api_keys,omitempty"`

	// ModelPreferences maps provider names to the model to use with them.
	ModelPreferences map[string]string `json:"model_preferences,omitempty"`

	// Defaults holds the per-command default settings.
	Defaults Defaults `json:"defaults"`
}

// Defaults holds the user-configurable command defaults.
type Defaults struct {
	// RecentCommits is how many commits `recent` summarizes.
	RecentCommits int `json:"recent_commits"`

	// CompareBranch is the base branch for branch-relative commands.
	CompareBranch string `json:"compare_branch"`

	// OutputFormat is one of "text", "markdown", "json".
	OutputFormat string `json:"output_format"`
}

// CorruptError reports a config file that exists but cannot be parsed.
// It is surfaced to the user rather than silently replaced with defaults.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("config file %s is corrupt: %v (fix or remove it, then run 'gitsumm setup')", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// MissingCredentialError reports that no API key could be resolved for a
// provider that requires one.
type MissingCredentialError struct {
	Provider string
	EnvVar   string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("no API key for provider %q; set %s or run 'gitsumm setup'", e.Provider, e.EnvVar)
}

// Load reads the configuration from the default config file.
// A missing file yields the built-in defaults; an unparsable file yields a
// *CorruptError.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("determining config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}
	if err := cfg.checkSchema(); err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}

	cfg.fillMissing()
	return cfg, nil
}

// Save writes the configuration atomically: the document is written to a
// temporary file in the config directory and renamed into place, so a crash
// mid-write never leaves a truncated config behind.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("determining config path: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("creating temp config file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp config file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("setting config file mode: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp config file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing config file: %w", err)
	}

	return nil
}

// Path returns the full path to the configuration file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile), nil
}

// EnvAPIKey returns the environment variable consulted for a provider's
// credential, e.g. GROQ_API_KEY for "groq".
func EnvAPIKey(provider string) string {
	return strings.ToUpper(provider) + "_API_KEY"
}

// APIKeyFor resolves the credential for a provider. The provider-specific
// environment variable takes precedence over the stored key. When required
// is true and neither source has a value, a *MissingCredentialError is
// returned.
func (c *Config) APIKeyFor(provider string, required bool) (string, error) {
	envVar := EnvAPIKey(provider)
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}
	if v := c.APIKeys[provider]; v != "" {
		return v, nil
	}
	if required {
		return "", &MissingCredentialError{Provider: provider, EnvVar: envVar}
	}
	return "", nil
}

// SetAPIKey stores a credential for a provider.
func (c *Config) SetAPIKey(provider, key string) {
	if c.APIKeys == nil {
		c.APIKeys = map[string]string{}
	}
	c.APIKeys[provider] = key
}

// SetModel stores the model preference for a provider.
func (c *Config) SetModel(provider, model string) {
	if c.ModelPreferences == nil {
		c.ModelPreferences = map[string]string{}
	}
	c.ModelPreferences[provider] = model
}

// ModelFor returns the configured model for a provider, falling back to the
// built-in default for that provider.
func (c *Config) ModelFor(provider string) string {
	if m := c.ModelPreferences[provider]; m != "" {
		return m
	}
	return DefaultModels[provider]
}

// checkSchema rejects documents that parse as JSON but carry values outside
// the schema.
func (c *Config) checkSchema() error {
	switch c.Defaults.OutputFormat {
	case "", "text", "markdown", "json":
	default:
		return fmt.Errorf("invalid output format %q", c.Defaults.OutputFormat)
	}
	if c.Defaults.RecentCommits < 0 {
		return fmt.Errorf("invalid recent_commits %d", c.Defaults.RecentCommits)
	}
	return nil
}

// fillMissing replaces zero-valued fields with built-in defaults so a config
// written by an older version stays usable.
func (c *Config) fillMissing() {
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
	if c.APIKeys == nil {
		c.APIKeys = map[string]string{}
	}
	if c.ModelPreferences == nil {
		c.ModelPreferences = map[string]string{}
	}
	for name, model := range DefaultModels {
		if _, ok := c.ModelPreferences[name]; !ok {
			c.ModelPreferences[name] = model
		}
	}
	if c.Defaults.RecentCommits == 0 {
		c.Defaults.RecentCommits = DefaultRecentCommits
	}
	if c.Defaults.CompareBranch == "" {
		c.Defaults.CompareBranch = DefaultCompareBranch
	}
	if c.Defaults.OutputFormat == "" {
		c.Defaults.OutputFormat = DefaultOutputFormat
	}
}

// MaskKey returns a masked rendition of an API key for display.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
