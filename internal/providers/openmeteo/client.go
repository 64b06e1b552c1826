// Package openmeteo resolves a city to coordinates and reports its local time and current weather.
package openmeteo

import (
	"context"
	"net/url"
	"strconv"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
	"github.com/preston-bernstein/city-team-dashboard/internal/providers"
)

// Config controls how the client reaches the geocoding and forecast endpoints.
type Config struct {
	GeocodingBaseURL string
	ForecastBaseURL  string
	Upstream         *providers.Upstream
}

// Client fetches city conditions.
type Client struct {
	geocodingURL string
	forecastURL  string
	upstream     *providers.Upstream
}

var _ providers.ConditionsFetcher = (*Client)(nil)

// NewClient constructs a weather/time client.
func NewClient(cfg Config) *Client {
	up := cfg.Upstream
	if up == nil {
		up = providers.NewUpstream(providers.UpstreamConfig{})
	}
	return &Client{
		geocodingURL: providers.NormalizeBaseURL(cfg.GeocodingBaseURL, defaultGeocodingURL),
		forecastURL:  providers.NormalizeBaseURL(cfg.ForecastBaseURL, defaultForecastURL),
		upstream:     up,
	}
}

// FetchCityConditions geocodes city, then reads the current observation for its coordinates.
func (c *Client) FetchCityConditions(ctx context.Context, city string) domain.WeatherConditions {
	if city == "" {
		return domain.WeatherConditions{Time: MsgTimeNoCity, Weather: MsgWeatherNoCity}
	}

	var places geocodingResponse
	if err := c.upstream.GetJSON(ctx, geocodingSource, c.searchURL(city), &places); err != nil {
		return loadFailure()
	}
	if len(places.Results) == 0 {
		return domain.WeatherConditions{Time: MsgCityNotFound, Weather: MsgWeatherNoLocation}
	}

	place := places.Results[0]
	var forecast forecastResponse
	if err := c.upstream.GetJSON(ctx, forecastSource, c.currentURL(place.Latitude, place.Longitude), &forecast); err != nil {
		return loadFailure()
	}

	return domain.WeatherConditions{
		Time:    formatTime(forecast),
		Weather: formatWeather(forecast.Current),
	}
}

func loadFailure() domain.WeatherConditions {
	return domain.WeatherConditions{Time: MsgTimeLoadFail, Weather: MsgWeatherLoadFail}
}

func (c *Client) searchURL(city string) string {
	q := url.Values{}
	q.Set("name", city)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")
	return c.geocodingURL + "/search?" + q.Encode()
}

func (c *Client) currentURL(lat, lon float64) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", currentFields)
	q.Set("timezone", "auto")
	return c.forecastURL + "/forecast?" + q.Encode()
}
