// Package openrouter implements domain.AIClient against the OpenRouter
// chat-completions API (OpenAI compatible). It is the optional enrichment
// collaborator: callers must treat any error as a signal to proceed without
// AI insights.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fairyhunter13/resume-analyzer/internal/adapter/observability"
	"github.com/fairyhunter13/resume-analyzer/internal/config"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

const systemPrompt = "You are an experienced technical recruiter reviewing a resume. " +
	"Write a short narrative assessment: main strengths, notable gaps, and up to three " +
	"concrete suggestions. If a job description is provided, focus on fit for it. " +
	"Plain text, at most 200 words."

// Client calls OpenRouter chat completions with bounded retries.
type Client struct {
	cfg config.Config
	hc  *http.Client
}

// New constructs an OpenRouter client.
func New(cfg config.Config) *Client {
	return &Client{
		cfg: cfg,
		hc: &http.Client{
			Timeout:   cfg.AITimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateInsights sends the bounded resume and job prefixes upstream and
// returns the model's narrative. Transient upstream failures (5xx, 429,
// network errors) are retried with exponential backoff until the context
// deadline; everything else fails fast.
func (c *Client) GenerateInsights(ctx context.Context, resumePrefix, jobPrefix string) (*domain.AIInsights, error) {
	if c.cfg.OpenRouterAPIKey == "" {
		return nil, fmt.Errorf("%w: OPENROUTER_API_KEY missing", domain.ErrEnrichment)
	}

	var sb strings.Builder
	sb.WriteString("Resume:\n")
	sb.WriteString(resumePrefix)
	if jobPrefix != "" {
		sb.WriteString("\n\nJob description:\n")
		sb.WriteString(jobPrefix)
	}
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.OpenRouterModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: sb.String()},
		},
		MaxTokens:   512,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", domain.ErrEnrichment, err)
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 500 * time.Millisecond
	expo.MaxInterval = 5 * time.Second
	expo.MaxElapsedTime = c.cfg.AITimeout

	var content string
	start := time.Now()
	err = backoff.Retry(func() error {
		var callErr error
		content, callErr = c.chatOnce(ctx, body)
		return callErr
	}, backoff.WithContext(expo, ctx))
	observability.AIRequestDuration.WithLabelValues("openrouter", "chat").Observe(time.Since(start).Seconds())
	if err != nil {
		observability.EnrichmentFailuresTotal.Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrEnrichment, err)
	}
	return &domain.AIInsights{Analysis: content, Timestamp: time.Now().UTC()}, nil
}

// chatOnce performs a single chat-completions call. Returning
// backoff.Permanent stops the retry loop.
func (c *Client) chatOnce(ctx context.Context, body []byte) (string, error) {
	observability.AIRequestsTotal.WithLabelValues("openrouter", "chat").Inc()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.cfg.OpenRouterBaseURL, "/")+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.OpenRouterAPIKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", fmt.Errorf("openrouter status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return "", backoff.Permanent(fmt.Errorf("openrouter status %d", resp.StatusCode))
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var parsed chatResponse
	if err := json.Unmarshal(b, &parsed); err != nil {
		return "", backoff.Permanent(fmt.Errorf("decode response: %w", err))
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", backoff.Permanent(fmt.Errorf("empty completion"))
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
