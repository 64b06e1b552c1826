package openmeteo

const (
	geocodingSource        = "open-meteo-geocoding"
	forecastSource         = "open-meteo-forecast"
	defaultGeocodingURL    = "https://geocoding-api.open-meteo.com/v1"
	defaultForecastURL     = "https://api.open-meteo.com/v1"
	currentFields          = "temperature_2m,weather_code"
	defaultConditionsLabel = "Current conditions"
)

// Display strings returned by FetchCityConditions.
const (
	MsgTimeNoCity        = "Add a city to see the local time."
	MsgWeatherNoCity     = "Add a city to see the weather."
	MsgTimeLoadFail      = "We couldn't load the local time right now."
	MsgWeatherLoadFail   = "We couldn't load the weather right now."
	MsgCityNotFound      = "We couldn't find that city."
	MsgWeatherNoLocation = "Weather is unavailable for this location."
	MsgTimeUnavailable   = "Local time is unavailable."
	MsgWeatherNoData     = "Weather data is unavailable."
)
