// Package wikipedia fetches encyclopedia summaries for free-text topics.
package wikipedia

import (
	"context"
	"net/url"

	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
)

// Config controls how the client reaches the summary endpoint.
type Config struct {
	BaseURL  string
	Upstream *providers.Upstream
}

// Client fetches page summaries.
type Client struct {
	baseURL  string
	upstream *providers.Upstream
}

var _ providers.FactFetcher = (*Client)(nil)

// NewClient constructs a summary client.
func NewClient(cfg Config) *Client {
	up := cfg.Upstream
	if up == nil {
		up = providers.NewUpstream(providers.UpstreamConfig{})
	}
	return &Client{
		baseURL:  providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		upstream: up,
	}
}

// FetchFact returns the summary paragraph for topic, or a fixed message when none is available.
func (c *Client) FetchFact(ctx context.Context, topic string) string {
	if topic == "" {
		return MsgNoTopic
	}

	var payload summaryResponse
	if err := c.upstream.GetJSON(ctx, sourceName, c.summaryURL(topic), &payload); err != nil {
		return MsgLoadFail
	}
	if payload.Extract == "" {
		return MsgNoSummary
	}
	return payload.Extract
}

func (c *Client) summaryURL(topic string) string {
	return c.baseURL + "/page/summary/" + url.PathEscape(topic)
}
