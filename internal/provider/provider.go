// Package provider defines the interface for LLM backends used to generate
// summaries. Implementations exist for hosted APIs (Groq, OpenAI, Gemini,
// Anthropic) and a local Ollama instance, all presenting the same contract.
package provider

import (
	"context"
	"fmt"
	"strings"
)

// Provider is the capability contract every backend satisfies: given a
// prompt, return generated text. Model and credential are bound when the
// provider is constructed. A single attempt is made per call; there is no
// retry logic.
type Provider interface {
	// Name returns the provider identifier (e.g., "groq", "ollama").
	Name() string

	// Generate sends the prompt to the backend and returns the generated text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options carries the per-invocation construction parameters for a backend.
type Options struct {
	// APIKey is the resolved credential. Empty for backends that need none.
	APIKey string

	// Model is the model identifier to request.
	Model string
}

// Factory constructs a Provider from resolved options.
type Factory func(opts Options) (Provider, error)

// UnknownProviderError reports a lookup of a name that is not registered.
// It guards against config corruption and typos.
type UnknownProviderError struct {
	Name      string
	Available []string
}

func (e *UnknownProviderError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown provider %q; no providers registered", e.Name)
	}
	return fmt.Sprintf("unknown provider %q; available: %s", e.Name, strings.Join(e.Available, ", "))
}

// Error reports a backend failure: network error, non-success HTTP status,
// or a malformed response.
type Error struct {
	// Provider is the backend that failed.
	Provider string

	// Err is the underlying failure.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
