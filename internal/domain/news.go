package domain

import (
	"net/url"

	"github.com/preston-bernstein/city-team-dashboard/internal/timeutil"
)

const (
	newsSearchURL    = "https://news.google.com/search"
	newsFallbackText = "Browse the latest headlines"
	newsFallbackNote = "We couldn't load headlines. Open Google News instead."
)

// NewsItem is a single headline taken from a news feed.
type NewsItem struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Date   string `json:"date"`
	Source string `json:"source"`
}

// Meta renders "<source> • <Jan 2>", dropping the date when it cannot be parsed.
func (n NewsItem) Meta() string {
	if label := timeutil.ShortFeedDate(n.Date); label != "" {
		return n.Source + " • " + label
	}
	return n.Source
}

// NewsFallback points the reader at a news search when no headlines loaded.
type NewsFallback struct {
	URL  string `json:"url"`
	Text string `json:"text"`
	Note string `json:"note"`
}

// NewsPanel is one headline list on the dashboard.
type NewsPanel struct {
	Message  string        `json:"message,omitempty"`
	Items    []NewsItem    `json:"items"`
	Fallback *NewsFallback `json:"fallback,omitempty"`
}

// LoadingNewsPanel is shown while headlines are being fetched.
func LoadingNewsPanel(message string) NewsPanel {
	return NewsPanel{Message: message, Items: []NewsItem{}}
}

// NewNewsPanel wraps fetched items, falling back to a search link for query when empty.
func NewNewsPanel(query string, items []NewsItem) NewsPanel {
	if len(items) > 0 {
		return NewsPanel{Items: items}
	}
	return NewsPanel{
		Items: []NewsItem{},
		Fallback: &NewsFallback{
			URL:  newsSearchURL + "?" + url.Values{"q": {query}}.Encode(),
			Text: newsFallbackText,
			Note: newsFallbackNote,
		},
	}
}
