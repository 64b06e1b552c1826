package config

// UpstreamsConfig holds the base URLs of every public data source.
type UpstreamsConfig struct {
	WikipediaBaseURL string
	GeocodingBaseURL string
	ForecastBaseURL  string
	SportsDBBaseURL  string
	NewsFeedBaseURL  string
	NewsRelayURL     string
}

func loadUpstreams(file fileUpstreams) UpstreamsConfig {
	return UpstreamsConfig{
		WikipediaBaseURL: envOrDefault(envWikipediaBaseURL, firstNonEmpty(file.Wikipedia, defaultWikipediaBaseURL)),
		GeocodingBaseURL: envOrDefault(envGeocodingBaseURL, firstNonEmpty(file.Geocoding, defaultGeocodingBaseURL)),
		ForecastBaseURL:  envOrDefault(envForecastBaseURL, firstNonEmpty(file.Forecast, defaultForecastBaseURL)),
		SportsDBBaseURL:  envOrDefault(envSportsDBBaseURL, firstNonEmpty(file.SportsDB, defaultSportsDBBaseURL)),
		NewsFeedBaseURL:  envOrDefault(envNewsFeedBaseURL, firstNonEmpty(file.NewsFeed, defaultNewsFeedBaseURL)),
		NewsRelayURL:     envOrDefault(envNewsRelayURL, firstNonEmpty(file.NewsRelay, defaultNewsRelayURL)),
	}
}
