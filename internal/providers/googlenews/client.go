// Package googlenews reads headline search results from the Google News RSS feed through a relay proxy.
package googlenews

import (
	"bytes"
	"context"
	"encoding/xml"
	"log/slog"
	"net/url"

	"golang.org/x/net/html/charset"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
	"github.com/preston-bernstein/city-team-dashboard/internal/logging"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
)

// Config controls how the client reaches the feed. RelayURL wraps FeedURL as its url query parameter.
type Config struct {
	FeedURL  string
	RelayURL string
	Upstream *providers.Upstream
	Logger   *slog.Logger
}

// Client fetches headlines.
type Client struct {
	feedURL  string
	relayURL string
	upstream *providers.Upstream
	logger   *slog.Logger
}

var _ providers.NewsFetcher = (*Client)(nil)

// NewClient constructs a news client.
func NewClient(cfg Config) *Client {
	up := cfg.Upstream
	if up == nil {
		up = providers.NewUpstream(providers.UpstreamConfig{})
	}
	return &Client{
		feedURL:  providers.NormalizeBaseURL(cfg.FeedURL, defaultFeedURL),
		relayURL: providers.NormalizeBaseURL(cfg.RelayURL, defaultRelayURL),
		upstream: up,
		logger:   cfg.Logger,
	}
}

// FetchNews returns up to MaxItems headlines for query in feed order.
// Any failure yields an empty list.
func (c *Client) FetchNews(ctx context.Context, query string) []domain.NewsItem {
	if query == "" {
		return nil
	}

	body, err := c.upstream.Get(ctx, sourceName, c.relayedURL(query))
	if err != nil {
		return nil
	}
	items, err := parseFeed(body)
	if err != nil {
		logging.Warn(c.logger, "news feed unreadable",
			slog.String(logging.FieldSource, sourceName),
			slog.Any("error", err),
		)
		return nil
	}
	return items
}

// feedURLFor builds the search feed address for query.
func (c *Client) feedURLFor(query string) string {
	q := url.Values{}
	q.Set("q", query)
	q.Set("hl", "en-US")
	q.Set("gl", "US")
	q.Set("ceid", "US:en")
	return c.feedURL + "?" + q.Encode()
}

func (c *Client) relayedURL(query string) string {
	return c.relayURL + "?" + url.Values{"url": {c.feedURLFor(query)}}.Encode()
}

func parseFeed(body []byte) ([]domain.NewsItem, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charset.NewReaderLabel
	dec.Strict = false

	var doc rssDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	n := min(len(doc.Items), MaxItems)
	items := make([]domain.NewsItem, 0, n)
	for _, it := range doc.Items[:n] {
		source := DefaultSource
		if it.Source != nil {
			source = it.Source.Name
		}
		items = append(items, domain.NewsItem{
			Title:  it.Title,
			Link:   it.Link,
			Date:   it.PubDate,
			Source: source,
		})
	}
	return items, nil
}
