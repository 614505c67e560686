package weather

import "strings"

// UnknownRegion is used when the geocoder returns no first-level admin area.
const UnknownRegion = "Unknown"

// PlaceQuery is a trimmed place name as typed by the user.
type PlaceQuery string

// NewPlaceQuery trims the raw input and rejects blank text.
func NewPlaceQuery(raw string) (PlaceQuery, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", emptyInputError()
	}
	return PlaceQuery(q), nil
}

func (q PlaceQuery) String() string {
	return string(q)
}

// ResolvedLocation is a single geocoding match.
type ResolvedLocation struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CurrentWeather is the current-conditions subset of a forecast response.
type CurrentWeather struct {
	TemperatureC float64 `json:"temperatureC"`
	WindSpeedKmh float64 `json:"windSpeedKmh"`
	WeatherCode  int     `json:"weatherCode"`
}
