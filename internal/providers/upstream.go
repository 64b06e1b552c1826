package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/city-team-dashboard/internal/logging"
	"github.com/preston-bernstein/city-team-dashboard/internal/metrics"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 4 << 20
	maxErrorBodyBytes  = 512
)

// HTTPDoer is the subset of *http.Client used to reach upstreams.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// UpstreamConfig controls the shared transport used by every source client.
type UpstreamConfig struct {
	HTTPClient HTTPDoer
	Timeout    time.Duration
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Upstream performs GET requests against public APIs, recording per-source metrics and logs.
type Upstream struct {
	doer    HTTPDoer
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewUpstream constructs an Upstream. A nil HTTPClient gets a client with Timeout (10s by default).
func NewUpstream(cfg UpstreamConfig) *Upstream {
	return &Upstream{
		doer:    resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		now:     time.Now,
	}
}

// Get fetches rawURL and returns the body of a 2xx response.
// Non-2xx responses yield a *StatusError.
func (u *Upstream) Get(ctx context.Context, source, rawURL string) ([]byte, error) {
	start := u.now()
	body, status, err := u.get(ctx, source, rawURL)
	elapsed := u.now().Sub(start)

	u.metrics.RecordSourceAttempt(source, status, elapsed, err)
	if err != nil {
		logWithSource(ctx, u.logger, slog.LevelWarn, source, "upstream request failed",
			slog.Int(logging.FieldStatusCode, status),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return nil, err
	}
	logWithSource(ctx, u.logger, slog.LevelDebug, source, "upstream request complete",
		slog.Int(logging.FieldStatusCode, status),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return body, nil
}

// GetJSON fetches rawURL and decodes a 2xx JSON body into dest.
func (u *Upstream) GetJSON(ctx context.Context, source, rawURL string, dest any) error {
	body, err := u.Get(ctx, source, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%s: decode response: %w", source, err)
	}
	return nil
}

func (u *Upstream) get(ctx context.Context, source, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: build request: %w", source, err)
	}
	req.Header.Set("Accept", "application/json, application/rss+xml, text/xml;q=0.9, */*;q=0.8")

	resp, err := u.doer.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, resp.StatusCode, &StatusError{
			Source:     source,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%s: read body: %w", source, err)
	}
	return body, resp.StatusCode, nil
}

func resolveHTTPClient(client HTTPDoer, timeout time.Duration) HTTPDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

// NormalizeBaseURL trims a trailing slash, substituting fallback when raw is empty.
func NormalizeBaseURL(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}
