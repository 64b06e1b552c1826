package googlenews

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
	"github.com/preston-bernstein/city-team-dashboard/internal/testutil"
)

func newTestClient(routes testutil.Routes, log *testutil.RequestLog) *Client {
	return NewClient(Config{
		FeedURL:  "http://feed.test/rss/search",
		RelayURL: "http://relay.test/raw",
		Upstream: providers.NewUpstream(providers.UpstreamConfig{HTTPClient: routes.Client(log)}),
	})
}

func TestFetchNewsCapsAtFiveInFeedOrder(t *testing.T) {
	client := newTestClient(testutil.Routes{"/raw": {Body: testutil.RSSFeed(8)}}, nil)

	got := client.FetchNews(context.Background(), "Paris")
	if diff := cmp.Diff(testutil.SampleNewsItems(MaxItems), got); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestFetchNewsWrapsFeedURLInRelay(t *testing.T) {
	var seen *url.URL
	client := NewClient(Config{
		FeedURL:  "http://feed.test/rss/search/",
		RelayURL: "http://relay.test/raw",
		Upstream: providers.NewUpstream(providers.UpstreamConfig{
			HTTPClient: testutil.NewStubClient(func(req *http.Request) (*http.Response, error) {
				seen = req.URL
				return testutil.StubResponse(http.StatusOK, testutil.RSSFeed(0)), nil
			}),
		}),
	})

	client.FetchNews(context.Background(), "Man City & friends")

	if seen == nil || seen.Host != "relay.test" || seen.Path != "/raw" {
		t.Fatalf("expected relay request, got %v", seen)
	}
	feed, err := url.Parse(seen.Query().Get("url"))
	if err != nil {
		t.Fatalf("relayed url did not parse: %v", err)
	}
	if feed.Host != "feed.test" || feed.Path != "/rss/search" {
		t.Fatalf("unexpected feed url %s", feed)
	}
	q := feed.Query()
	if q.Get("q") != "Man City & friends" || q.Get("hl") != "en-US" || q.Get("gl") != "US" || q.Get("ceid") != "US:en" {
		t.Fatalf("unexpected feed query %v", q)
	}
}

func TestFetchNewsDefaultsMissingFields(t *testing.T) {
	feed := `<rss><channel>` +
		`<item><title>Only a title</title></item>` +
		`<item><title>Empty source</title><source url="x"></source></item>` +
		`</channel></rss>`
	client := newTestClient(testutil.Routes{"/raw": {Body: feed}}, nil)

	want := []domain.NewsItem{
		{Title: "Only a title", Source: DefaultSource},
		{Title: "Empty source", Source: ""},
	}
	if diff := cmp.Diff(want, client.FetchNews(context.Background(), "x")); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestFetchNewsEmptyQuerySkipsNetwork(t *testing.T) {
	log := &testutil.RequestLog{}
	client := newTestClient(testutil.Routes{}, log)

	if got := client.FetchNews(context.Background(), ""); len(got) != 0 {
		t.Fatalf("expected no items, got %v", got)
	}
	if log.Count() != 0 {
		t.Fatalf("expected zero requests, got %d", log.Count())
	}
}

func TestFetchNewsFailuresYieldEmptyList(t *testing.T) {
	cases := map[string]testutil.RoundTripFunc{
		"non-2xx": func(*http.Request) (*http.Response, error) {
			return testutil.StubResponse(http.StatusBadGateway, testutil.RSSFeed(3)), nil
		},
		"transport": func(*http.Request) (*http.Response, error) {
			return nil, errors.New("dial tcp: refused")
		},
		"not xml": func(*http.Request) (*http.Response, error) {
			return testutil.StubResponse(http.StatusOK, "relay quota exceeded"), nil
		},
		"html page": func(*http.Request) (*http.Response, error) {
			return testutil.StubResponse(http.StatusOK, "<html><body>oops</body></html>"), nil
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			logger, _ := testutil.NewBufferLogger()
			client := NewClient(Config{
				Upstream: providers.NewUpstream(providers.UpstreamConfig{HTTPClient: testutil.NewStubClient(fn)}),
				Logger:   logger,
			})
			if got := client.FetchNews(context.Background(), "Paris"); len(got) != 0 {
				t.Fatalf("expected no items, got %v", got)
			}
		})
	}
}
