package weather

import (
	"context"
)

// Resolver turns a place name into coordinates (e.g. Open-Meteo geocoding).
type Resolver interface {
	Resolve(ctx context.Context, query string) (ResolvedLocation, error)
}

// Fetcher returns current conditions for a coordinate pair.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (CurrentWeather, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(ctx context.Context, query string) (ResolvedLocation, error)

func (f ResolverFunc) Resolve(ctx context.Context, query string) (ResolvedLocation, error) {
	return f(ctx, query)
}

// FetcherFunc adapts a plain function to Fetcher.
type FetcherFunc func(ctx context.Context, lat, lon float64) (CurrentWeather, error)

func (f FetcherFunc) Fetch(ctx context.Context, lat, lon float64) (CurrentWeather, error) {
	return f(ctx, lat, lon)
}
