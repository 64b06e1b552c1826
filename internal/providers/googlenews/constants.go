package googlenews

const (
	sourceName      = "google-news"
	defaultFeedURL  = "https://news.google.com/rss/search"
	defaultRelayURL = "https://api.allorigins.win/raw"

	// MaxItems caps how many headlines FetchNews returns.
	MaxItems = 5
	// DefaultSource labels items whose feed entry names no publisher.
	DefaultSource = "Google News"
)
