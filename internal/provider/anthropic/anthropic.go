// Package anthropic provides an LLM backend using Anthropic's Messages API
// via the official SDK.
package anthropic

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/gitsumm/gitsumm/internal/provider"
)

// DefaultModel is used when no model preference is configured.
const DefaultModel = "claude-sonnet-4-20250514"

// Client implements provider.Provider against the Anthropic API.
type Client struct {
	client anthropic.Client
	model  anthropic.Model
}

// New creates an Anthropic client with the given API key and model.
func New(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}, nil
}

// Name returns "anthropic".
func (c *Client) Name() string {
	return "anthropic"
}

// Generate sends the prompt as a single user message and returns the text
// content of the response.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1000,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", &provider.Error{Provider: c.Name(), Err: err}
	}

	text := extractText(resp)
	if text == "" {
		return "", &provider.Error{Provider: c.Name(), Err: errors.New("empty response from anthropic API")}
	}

	return text, nil
}

// extractText returns the first text block of a Messages response.
func extractText(resp *anthropic.Message) string {
	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text
		}
	}
	return ""
}
