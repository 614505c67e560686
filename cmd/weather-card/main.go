package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpapi "github.com/i474232898/weather-card/internal/api/http"
	"github.com/i474232898/weather-card/internal/config"
	"github.com/i474232898/weather-card/internal/logging"
	"github.com/i474232898/weather-card/internal/scheduler"
	"github.com/i474232898/weather-card/internal/store"
	"github.com/i474232898/weather-card/internal/views"
	"github.com/i474232898/weather-card/internal/weather"
	"github.com/i474232898/weather-card/internal/weather/providers"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found or error loading it", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg, version, "weather-card")
	slog.SetDefault(log)

	if err := views.LoadTemplates(); err != nil {
		log.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	httpCfg := providers.DefaultHTTPConfig(httpClient)
	httpCfg.Backoff.MaxRetries = cfg.HTTPMaxRetries

	geoOpts := providers.GeocodingOptions{
		BaseURL: cfg.GeocodingURL,
		Count:   cfg.GeocodingCount,
	}
	if cfg.ValidatePlaceTypes {
		geoOpts.AllowedFeatureCodes = cfg.AllowedFeatureCodes
	}
	resolver := providers.NewGeocodingResolver(httpCfg, geoOpts)
	fetcher := providers.NewOpenMeteoFetcher(httpCfg, cfg.ForecastURL)

	service := weather.NewService(resolver, fetcher, log)

	sessions := store.NewMemoryStore(cfg.SessionMax, cfg.SessionMaxIdle, cfg.DiscardStale)

	sched := scheduler.New(sessions, cfg.SessionPruneInterval, log)
	if err := sched.Start(); err != nil {
		log.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	app := httpapi.NewApp(httpapi.NewHandler(service, sessions, log), true)

	go func() {
		log.Info("http server listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("error during shutdown", "error", err)
	}
}
