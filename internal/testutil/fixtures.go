package testutil

import (
	"fmt"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
)

// SamplePreference returns a complete preference.
func SamplePreference() domain.Preference {
	return domain.Preference{City: "Paris", Team: "Arsenal"}
}

// SampleNewsItems returns n headlines with predictable fields.
func SampleNewsItems(n int) []domain.NewsItem {
	items := make([]domain.NewsItem, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, domain.NewsItem{
			Title:  fmt.Sprintf("Headline %d", i),
			Link:   fmt.Sprintf("https://news.example.com/%d", i),
			Date:   "Tue, 02 Jan 2024 15:04:05 GMT",
			Source: "Example Wire",
		})
	}
	return items
}

// RSSFeed renders a minimal RSS document containing n items.
func RSSFeed(n int) string {
	body := `<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>feed</title>`
	for i := 1; i <= n; i++ {
		body += fmt.Sprintf(`<item><title>Headline %d</title><link>https://news.example.com/%d</link>`+
			`<pubDate>Tue, 02 Jan 2024 15:04:05 GMT</pubDate><source url="https://example.com">Example Wire</source></item>`, i, i)
	}
	return body + `</channel></rss>`
}
