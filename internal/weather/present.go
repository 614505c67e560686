package weather

import (
	"fmt"
	"strconv"
)

// ViewKind distinguishes success cards from error cards.
type ViewKind string

const (
	ViewNone    ViewKind = ""
	ViewSuccess ViewKind = "success"
	ViewError   ViewKind = "error"
)

// View is what the presentation surface displays. Only one kind of content
// is set at a time.
type View struct {
	Kind        ViewKind `json:"kind"`
	Title       string   `json:"title,omitempty"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Temperature string   `json:"temperature,omitempty"`
	Wind        string   `json:"wind,omitempty"`
	Condition   string   `json:"condition,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// Empty reports whether nothing has been rendered yet.
func (v View) Empty() bool {
	return v.Kind == ViewNone
}

// Renderer is the display surface the orchestrator writes to. Each call
// replaces whatever was shown before.
type Renderer interface {
	RenderSuccess(loc ResolvedLocation, cw CurrentWeather)
	RenderError(message string)
}

// SuccessView formats a location and its current weather.
func SuccessView(loc ResolvedLocation, cw CurrentWeather) View {
	return View{
		Kind:        ViewSuccess,
		Title:       loc.Name,
		Subtitle:    fmt.Sprintf("%s, %s", loc.Region, loc.Country),
		Temperature: fmt.Sprintf("Temperature: %s°C", formatNumber(cw.TemperatureC)),
		Wind:        fmt.Sprintf("Wind Speed: %s km/h", formatNumber(cw.WindSpeedKmh)),
		Condition:   "Condition: " + DescribeCode(cw.WeatherCode),
		Icon:        CodeIcon(cw.WeatherCode),
	}
}

// ErrorView formats a single error message.
func ErrorView(message string) View {
	return View{Kind: ViewError, Message: message}
}

// formatNumber prints the shortest decimal that round-trips, so 15.0 is "15".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
