package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-card/internal/weather"
)

const DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoFetcher implements weather.Fetcher for the Open-Meteo forecast API.
type OpenMeteoFetcher struct {
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoFetcher(httpCfg HTTPClientConfig, baseURL string) *OpenMeteoFetcher {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = DefaultForecastURL
	}
	return &OpenMeteoFetcher{
		baseURL: base,
		httpCfg: httpCfg,
		circuit: newCircuit("openmeteo"),
	}
}

func (p *OpenMeteoFetcher) Fetch(ctx context.Context, lat, lon float64) (weather.CurrentWeather, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("current_weather", "true")
	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())

	var payload struct {
		CurrentWeather *struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
	}

	if err := getJSON(ctx, p.httpCfg, p.circuit, u, &payload); err != nil {
		return weather.CurrentWeather{}, weather.NewServiceError(weather.MsgWeatherService, err)
	}
	if payload.CurrentWeather == nil {
		return weather.CurrentWeather{}, weather.NewServiceError(weather.MsgWeatherService,
			fmt.Errorf("response has no current_weather block"))
	}

	return weather.CurrentWeather{
		TemperatureC: payload.CurrentWeather.Temperature,
		WindSpeedKmh: payload.CurrentWeather.WindSpeed,
		WeatherCode:  payload.CurrentWeather.WeatherCode,
	}, nil
}
