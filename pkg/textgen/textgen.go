package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go-retail-crm/pkg/config"
)

// ErrNotConfigured is returned when no text-generation endpoint is set.
var ErrNotConfigured = errors.New("text-generation service not configured")

// Client calls the external text-generation service. The contract is thin:
// send JSON, receive a string. Callers degrade to a fixed message on any
// failure.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func New(cfg config.InsightConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	Model             string `json:"model"`
	SystemInstruction string `json:"system_instruction,omitempty"`
	Prompt            string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// Generate sends a prompt and returns the generated text.
func (c *Client) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if c.baseURL == "" {
		return "", ErrNotConfigured
	}

	raw, err := json.Marshal(generateRequest{
		Model:             c.model,
		SystemInstruction: systemInstruction,
		Prompt:            prompt,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("text-generation service: HTTP %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Text, nil
}
