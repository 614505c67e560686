package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-card/internal/weather"
)

func TestOpenMeteoFetch(t *testing.T) {
	var seen url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query()
		_, _ = w.Write([]byte(`{"latitude":48.86,"longitude":2.35,"current_weather":{"temperature":15.0,"windspeed":10.0,"winddirection":250,"weathercode":1,"time":"2024-05-01T12:00"}}`))
	}))
	defer srv.Close()

	f := NewOpenMeteoFetcher(DefaultHTTPConfig(srv.Client()), srv.URL)
	cw, err := f.Fetch(context.Background(), 48.8566, 2.3522)
	require.NoError(t, err)

	require.Equal(t, weather.CurrentWeather{TemperatureC: 15, WindSpeedKmh: 10, WeatherCode: 1}, cw)
	require.Equal(t, "48.8566", seen.Get("latitude"))
	require.Equal(t, "2.3522", seen.Get("longitude"))
	require.Equal(t, "true", seen.Get("current_weather"))
}

func TestOpenMeteoFetchDoesNotValidateRanges(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current_weather":{"temperature":-273.5,"windspeed":-1,"weathercode":12345}}`))
	}))
	defer srv.Close()

	cw, err := NewOpenMeteoFetcher(DefaultHTTPConfig(srv.Client()), srv.URL).Fetch(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Equal(t, -273.5, cw.TemperatureC)
	require.Equal(t, 12345, cw.WeatherCode)
}

func TestOpenMeteoFetchErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusBadGateway, ``},
		{"rate limited", http.StatusTooManyRequests, ``},
		{"missing block", http.StatusOK, `{"latitude":1}`},
		{"not json", http.StatusOK, `<html>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewOpenMeteoFetcher(DefaultHTTPConfig(srv.Client()), srv.URL).Fetch(context.Background(), 1, 2)
			require.ErrorIs(t, err, weather.ErrService)
			require.Equal(t, weather.MsgWeatherService, weather.UserMessage(err))
		})
	}
}

func TestOpenMeteoFetchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	_, err := NewOpenMeteoFetcher(DefaultHTTPConfig(http.DefaultClient), base).Fetch(context.Background(), 1, 2)
	require.ErrorIs(t, err, weather.ErrService)
}
