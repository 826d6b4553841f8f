// Package summarize is a minimal client for a chat-completions style
// summarization API, used to condense forum threads.
package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const systemPrompt = "You summarize forum threads. Reply with a short paragraph " +
	"covering the main points of the discussion and any conclusion reached."

// Client calls the summarization endpoint. The zero value is not usable;
// construct it with NewClient.
type Client struct {
	apiKey      string
	url         string
	model       string
	temperature float32
	maxTokens   int
	httpClient  *http.Client
}

// NewClient returns a client for the given endpoint and model.
func NewClient(url, model, apiKey string) (Client, error) {
	if apiKey == "" {
		return Client{}, errors.New("summarizer API key is not set")
	}
	return Client{
		apiKey:      apiKey,
		url:         url,
		model:       model,
		temperature: 0.2,
		maxTokens:   800,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Summarize sends text to the API and returns the first choice's content.
func (c Client) Summarize(ctx context.Context, text string) (string, error) {
	payload := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": text},
		},
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call summarizer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("summarizer responded with status %s", resp.Status)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("invalid summarizer response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("summarizer returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
