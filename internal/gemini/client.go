// Package gemini is a minimal client for the Gemini generateContent API, used
// by the AI-augmented financial analysis.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hotelops-backend/internal/logger"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// Config holds the client settings, normally loaded from the gemini section of
// the application config.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client posts prompts to the generateContent endpoint. Every call is a single
// request with a bounded timeout; no retries.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends the prompt and returns the first candidate's text.
// Transport errors, non-2xx statuses and empty candidates are returned as
// errors; the caller decides how to recover.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     0.4,
			TopP:            0.95,
			MaxOutputTokens: 2048,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.ExternalServiceCall("gemini", "generateContent", "model", c.cfg.Model, "prompt_len", len(prompt))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("gemini", "generateContent", err)
		return "", fmt.Errorf("calling gemini: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.ExternalServiceResult("gemini", "generateContent", err)
		return "", fmt.Errorf("reading gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, truncate(string(raw), 200))
		logger.ExternalServiceResult("gemini", "generateContent", err)
		return "", err
	}

	var reply generateResponse
	if err := json.Unmarshal(raw, &reply); err != nil {
		logger.ExternalServiceResult("gemini", "generateContent", err)
		return "", fmt.Errorf("decoding gemini response: %w", err)
	}
	if len(reply.Candidates) == 0 || len(reply.Candidates[0].Content.Parts) == 0 {
		err := fmt.Errorf("gemini response has no candidates")
		logger.ExternalServiceResult("gemini", "generateContent", err)
		return "", err
	}

	logger.ExternalServiceResult("gemini", "generateContent", nil)
	return reply.Candidates[0].Content.Parts[0].Text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
