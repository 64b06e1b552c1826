package openmeteo

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

type forecastResponse struct {
	Timezone             string          `json:"timezone"`
	TimezoneAbbreviation string          `json:"timezone_abbreviation"`
	UTCOffsetSeconds     int             `json:"utc_offset_seconds"`
	Current              currentResponse `json:"current"`
}

type currentResponse struct {
	Time          string   `json:"time"`
	Temperature2m *float64 `json:"temperature_2m"`
	WeatherCode   *int     `json:"weather_code"`
}
