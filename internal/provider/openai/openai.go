// Package openai provides an LLM backend using the OpenAI chat completions
// API. Compatible servers can be targeted via OPENAI_BASE_URL.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gitsumm/gitsumm/internal/provider"
)

const (
	// DefaultBaseURL is the hosted OpenAI endpoint root.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is used when no model preference is configured.
	DefaultModel = "gpt-4o"
)

// Client implements provider.Provider against the OpenAI API.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// New creates an OpenAI client. OPENAI_BASE_URL overrides the endpoint for
// Azure/vLLM/llama.cpp style compatible servers and for tests.
func New(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("openai API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Name returns "openai".
func (c *Client) Name() string {
	return "openai"
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the prompt as a single user message and returns the
// completion text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.5,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", &provider.Error{Provider: c.Name(), Err: fmt.Errorf("marshaling request: %w", err)}
	}

	url := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &provider.Error{Provider: c.Name(), Err: fmt.Errorf("creating request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", &provider.Error{Provider: c.Name(), Err: fmt.Errorf("calling openai API: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &provider.Error{Provider: c.Name(), Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("openai API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		return "", &provider.Error{Provider: c.Name(), Err: err}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", &provider.Error{Provider: c.Name(), Err: fmt.Errorf("parsing response: %w", err)}
	}
	if chatResp.Error != nil {
		return "", &provider.Error{Provider: c.Name(), Err: fmt.Errorf("openai API error: %s", chatResp.Error.Message)}
	}
	if len(chatResp.Choices) == 0 {
		return "", &provider.Error{Provider: c.Name(), Err: errors.New("empty response from openai API")}
	}

	return chatResp.Choices[0].Message.Content, nil
}
