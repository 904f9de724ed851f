// Package llm bridges analyzer prompts to an Ollama chat endpoint and folds
// the reply into a single commentary string. Calls are made once, with a
// timeout and without retries; callers substitute their local fallback on
// any error.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

const (
	DefaultModel   = "gpt-oss:20b"
	DefaultTimeout = 120 * time.Second

	// maxContentChars bounds how much of the audited content is embedded
	// in the user prompt.
	maxContentChars = 2000

	// maxCommentaryChars is a display-size cap on the reply before it is
	// embedded as an issue string.
	maxCommentaryChars = 100
)

// Config carries the external service configuration. It is passed in
// explicitly at construction time; the client reads no ambient state.
type Config struct {
	Host    string
	Model   string
	Timeout time.Duration
}

// Client wraps the Ollama chat API.
type Client struct {
	client  *api.Client
	model   string
	timeout time.Duration
}

// New creates a client from an explicit configuration.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		cfg.Host = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	baseURL, err := url.Parse(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid LLM host: %w", err)
	}

	return &Client{
		client:  api.NewClient(baseURL, http.DefaultClient),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// Commentary sends one chat request built from a system instruction and a
// task description plus a truncated content excerpt, and returns the reply
// trimmed to a display-sized commentary string. The call is synchronous and
// never retried.
func (c *Client) Commentary(ctx context.Context, system, task, content string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`%s

Content (may be truncated):
%s

Respond with one or two short sentences. No preamble, no bullet points.`, task, Truncate(content, maxContentChars))

	req := &api.ChatRequest{
		Model: c.model,
		Messages: []api.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Stream: new(bool), // false
	}

	var reply strings.Builder
	err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		slog.Debug("llm chat request failed", "model", c.model, "error", err)
		return "", fmt.Errorf("chat request failed: %w", err)
	}

	commentary := Truncate(strings.TrimSpace(reply.String()), maxCommentaryChars)
	if commentary == "" {
		return "", fmt.Errorf("empty reply from model %s", c.model)
	}
	return commentary, nil
}

// Truncate cuts s to at most n runes. This is a display-size cap, not a
// semantic summary.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
