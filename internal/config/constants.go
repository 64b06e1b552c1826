package config

import "time"

const (
	envConfigFile         = "DASHBOARD_CONFIG"
	envPort               = "PORT"
	envProvider           = "PROVIDER"
	envLogLevel           = "LOG_LEVEL"
	envLogFormat          = "LOG_FORMAT"
	envUpstreamTimeout    = "UPSTREAM_TIMEOUT"
	envRefreshInterval    = "REFRESH_INTERVAL"
	envPreferencesBackend = "PREFERENCES_BACKEND"
	envPreferencesPath    = "PREFERENCES_PATH"
	envWikipediaBaseURL   = "WIKIPEDIA_BASE_URL"
	envGeocodingBaseURL   = "GEOCODING_BASE_URL"
	envForecastBaseURL    = "FORECAST_BASE_URL"
	envSportsDBBaseURL    = "SPORTSDB_BASE_URL"
	envNewsFeedBaseURL    = "NEWS_FEED_BASE_URL"
	envNewsRelayURL       = "NEWS_RELAY_URL"
	envMetricsPort        = "METRICS_PORT"
	envMetricsOn          = "METRICS_ENABLED"
	envOtelEndpoint       = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService        = "OTEL_SERVICE_NAME"
	envOtelInsecure       = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultProvider = ProviderLive
	// Bounds a hung upstream fetch.
	defaultUpstreamTimeout    = 10 * Duration(time.Second)
	defaultRefreshInterval    = 15 * Duration(time.Minute)
	defaultPreferencesBackend = BackendFile
	defaultPreferencesPath    = "data/preferences"
	defaultMetricsPort        = "9090"
	defaultServiceName        = "city-team-dashboard"

	defaultWikipediaBaseURL = "https://en.wikipedia.org/api/rest_v1"
	defaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1"
	defaultForecastBaseURL  = "https://api.open-meteo.com/v1"
	defaultSportsDBBaseURL  = "https://www.thesportsdb.com/api/v1/json/3"
	defaultNewsFeedBaseURL  = "https://news.google.com/rss/search"
	defaultNewsRelayURL     = "https://api.allorigins.win/raw"
)

// Provider names accepted by PROVIDER.
const (
	ProviderLive    = "live"
	ProviderFixture = "fixture"
)

// Preference slot backends accepted by PREFERENCES_BACKEND.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)
