// Package mock provides a recording fake provider for tests.
package mock

import (
	"context"
)

// Provider is a fake LLM backend that records prompts.
type Provider struct {
	// GenerateFunc allows customizing the Generate behavior.
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	// Prompts tracks every prompt passed to Generate.
	Prompts []string
}

// New creates a mock provider with default behavior.
func New() *Provider {
	return &Provider{}
}

// Name returns "mock".
func (p *Provider) Name() string {
	return "mock"
}

// Generate records the prompt and returns a canned summary, or delegates to
// GenerateFunc when set.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	p.Prompts = append(p.Prompts, prompt)

	if p.GenerateFunc != nil {
		return p.GenerateFunc(ctx, prompt)
	}

	return "Mock summary of changes", nil
}

// Reset clears recorded prompts.
func (p *Provider) Reset() {
	p.Prompts = nil
}
