// Package llm provides a chat-completions client for the assistant and
// report-insight features. Any OpenAI-compatible endpoint works.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pawsitting/booking-system/internal/core/ports"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Client implements ports.ChatCompleter against a chat-completions API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Config carries the settings for constructing a Client.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// NewClient creates a chat-completions client. An empty api key is tolerated:
// requests then fail with 401 and callers fall back, which is the intended
// degraded mode for unconfigured environments.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &Client{
		apiKey:     cfg.APIKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type completionRequest struct {
	Model    string             `json:"model"`
	Messages []ports.ChatPrompt `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the conversation to the model and returns the first choice's
// content. Non-2xx responses and empty choice lists are errors; callers apply
// their own fallback text.
func (c *Client) Complete(ctx context.Context, messages []ports.ChatPrompt) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("llm: unexpected status %d", resp.StatusCode)
	}

	var envelope completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("llm: decode response: %w", err)
	}
	if len(envelope.Choices) == 0 {
		return "", errors.New("llm: response contained no choices")
	}

	return strings.TrimSpace(envelope.Choices[0].Message.Content), nil
}
