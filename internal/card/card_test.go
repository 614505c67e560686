package card

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-card/internal/weather"
)

var (
	paris   = weather.ResolvedLocation{Name: "Paris", Region: "Île-de-France", Country: "France"}
	sunny   = weather.CurrentWeather{TemperatureC: 15, WindSpeedKmh: 10, WeatherCode: 1}
	tokyo   = weather.ResolvedLocation{Name: "Tokyo", Region: "Tokyo", Country: "Japan"}
	drizzle = weather.CurrentWeather{TemperatureC: 18, WindSpeedKmh: 4, WeatherCode: 51}
)

func TestCardStartsEmpty(t *testing.T) {
	c := New(true)
	require.True(t, c.View().Empty())
	require.True(t, c.UpdatedAt().IsZero())
}

func TestCardRenderReplacesPreviousView(t *testing.T) {
	c := New(true)

	c.Begin().RenderSuccess(paris, sunny)
	require.Equal(t, weather.ViewSuccess, c.View().Kind)
	require.Equal(t, "Paris", c.View().Title)
	require.False(t, c.UpdatedAt().IsZero())

	c.Begin().RenderError(weather.MsgNotFound)
	v := c.View()
	require.Equal(t, weather.ViewError, v.Kind)
	require.Equal(t, weather.MsgNotFound, v.Message)
	require.Empty(t, v.Title, "error view must not keep success fields")
}

func TestCardDiscardsStaleSubmission(t *testing.T) {
	c := New(true)

	older := c.Begin()
	newer := c.Begin()
	require.Less(t, older.Generation(), newer.Generation())

	newer.RenderSuccess(tokyo, drizzle)
	older.RenderSuccess(paris, sunny)

	require.True(t, newer.Applied())
	require.False(t, older.Applied())
	require.Equal(t, "Tokyo", c.View().Title)
}

func TestCardDiscardsStaleEvenBeforeNewerRenders(t *testing.T) {
	c := New(true)

	older := c.Begin()
	newer := c.Begin()

	older.RenderError(weather.MsgWeatherService)
	require.False(t, older.Applied())
	require.True(t, c.View().Empty())

	newer.RenderSuccess(tokyo, drizzle)
	require.Equal(t, "Tokyo", c.View().Title)
}

func TestCardLastWriterWins(t *testing.T) {
	c := New(false)

	older := c.Begin()
	newer := c.Begin()

	newer.RenderSuccess(tokyo, drizzle)
	older.RenderSuccess(paris, sunny)

	require.True(t, older.Applied())
	require.Equal(t, "Paris", c.View().Title)
}
