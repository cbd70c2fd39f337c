// Package noop provides a disabled AI client. Injecting it when no API key
// is configured keeps the orchestrator's control flow uniform: enrichment is
// simply absent instead of conditionally skipped.
package noop

import (
	"context"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// Client implements domain.AIClient and never produces insights.
type Client struct{}

// New constructs a noop client.
func New() *Client { return &Client{} }

// GenerateInsights reports enrichment as absent.
func (*Client) GenerateInsights(context.Context, string, string) (*domain.AIInsights, error) {
	return nil, nil
}
