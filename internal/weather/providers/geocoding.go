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

const DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

// SettlementFeatureCodes are the GeoNames feature codes for populated places.
var SettlementFeatureCodes = []string{"PPL", "PPLA", "PPLA2", "PPLA3", "PPLA4", "PPLG", "PPLS", "PPLX"}

// GeocodingOptions tunes GeocodingResolver.
type GeocodingOptions struct {
	BaseURL string
	// AllowedFeatureCodes filters results when non-empty. With no filter only
	// one result is requested.
	AllowedFeatureCodes []string
	// Count is the number of candidates requested when filtering.
	Count int
}

// GeocodingResolver implements weather.Resolver for the Open-Meteo geocoding API.
type GeocodingResolver struct {
	baseURL string
	count   int
	allowed map[string]struct{}
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewGeocodingResolver(httpCfg HTTPClientConfig, opts GeocodingOptions) *GeocodingResolver {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = DefaultGeocodingURL
	}

	allowed := make(map[string]struct{}, len(opts.AllowedFeatureCodes))
	for _, code := range opts.AllowedFeatureCodes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			allowed[code] = struct{}{}
		}
	}

	count := 1
	if len(allowed) > 0 {
		count = opts.Count
		if count <= 0 {
			count = 5
		}
	}

	return &GeocodingResolver{
		baseURL: base,
		count:   count,
		allowed: allowed,
		httpCfg: httpCfg,
		circuit: newCircuit("geocoding"),
	}
}

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

type geocodingResult struct {
	Name        string  `json:"name"`
	Admin1      string  `json:"admin1"`
	Country     string  `json:"country"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	FeatureCode string  `json:"feature_code"`
}

func (r *GeocodingResolver) Resolve(ctx context.Context, query string) (weather.ResolvedLocation, error) {
	values := url.Values{}
	values.Set("name", query)
	values.Set("count", strconv.Itoa(r.count))
	values.Set("format", "json")
	u := fmt.Sprintf("%s?%s", r.baseURL, values.Encode())

	var payload geocodingResponse
	if err := getJSON(ctx, r.httpCfg, r.circuit, u, &payload); err != nil {
		return weather.ResolvedLocation{}, weather.NewServiceError(weather.MsgLocationService, err)
	}

	if len(payload.Results) == 0 {
		return weather.ResolvedLocation{}, weather.NewNotFoundError(query)
	}

	match, ok := r.pick(payload.Results)
	if !ok {
		return weather.ResolvedLocation{}, weather.NewInvalidPlaceError(query)
	}

	region := match.Admin1
	if region == "" {
		region = weather.UnknownRegion
	}

	return weather.ResolvedLocation{
		Name:      match.Name,
		Region:    region,
		Country:   match.Country,
		Latitude:  match.Latitude,
		Longitude: match.Longitude,
	}, nil
}

// pick returns the first result in service order that passes the filter.
func (r *GeocodingResolver) pick(results []geocodingResult) (geocodingResult, bool) {
	if len(r.allowed) == 0 {
		return results[0], true
	}
	for _, res := range results {
		if _, ok := r.allowed[res.FeatureCode]; ok {
			return res, true
		}
	}
	return geocodingResult{}, false
}
