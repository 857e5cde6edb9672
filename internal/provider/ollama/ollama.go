// Package ollama provides an LLM backend using a local Ollama instance.
// No credential is required; OLLAMA_HOST selects the server address.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"strings"

	api "github.com/ollama/ollama/api"

	"github.com/gitsumm/gitsumm/internal/provider"
)

// DefaultModel is used when no model preference is configured.
const DefaultModel = "llama3"

// generator is the slice of the Ollama API client we use. Tests substitute
// a fake implementation.
type generator interface {
	Generate(ctx context.Context, req *api.GenerateRequest, fn api.GenerateResponseFunc) error
}

// Client implements provider.Provider against a local Ollama server.
type Client struct {
	model string
	api   generator
}

// New creates an Ollama client from the environment (OLLAMA_HOST).
func New(model string) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}

	c, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("creating ollama client: %w", err)
	}

	return &Client{model: model, api: c}, nil
}

// Name returns "ollama".
func (c *Client) Name() string {
	return "ollama"
}

// Generate sends the prompt to the local Ollama server and returns the
// non-streamed response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: &stream,
	}

	var b strings.Builder
	err := c.api.Generate(ctx, req, func(resp api.GenerateResponse) error {
		b.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		err = fmt.Errorf("%w (is Ollama running locally?)", err)
		return "", &provider.Error{Provider: c.Name(), Err: err}
	}

	text := b.String()
	if text == "" {
		return "", &provider.Error{Provider: c.Name(), Err: errors.New("empty response from ollama")}
	}

	return text, nil
}
