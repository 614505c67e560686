package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/i474232898/weather-card/internal/weather/providers"
)

var validate = validator.New()

type AppConfig struct {
	AppEnv   string     `yaml:"appEnv" validate:"oneof=dev prod"`
	LogLevel slog.Level `yaml:"-"`
	Port     string     `yaml:"port" validate:"required,numeric"`

	GeocodingURL string `yaml:"geocodingUrl" validate:"required,url"`
	ForecastURL  string `yaml:"forecastUrl" validate:"required,url"`

	// HTTPTimeout bounds each outbound call (0 = transport default).
	HTTPTimeout    time.Duration `yaml:"httpTimeout" validate:"gte=0"`
	HTTPMaxRetries int           `yaml:"httpMaxRetries" validate:"gte=0,lte=10"`

	// ValidatePlaceTypes restricts geocoding matches to AllowedFeatureCodes.
	ValidatePlaceTypes  bool     `yaml:"validatePlaceTypes"`
	AllowedFeatureCodes []string `yaml:"allowedFeatureCodes" validate:"required_if=ValidatePlaceTypes true,dive,required,alphanum"`
	GeocodingCount      int      `yaml:"geocodingCount" validate:"gte=1,lte=100"`

	// DiscardStale drops renders from submissions superseded by a newer one.
	DiscardStale bool `yaml:"discardStale"`

	// Session card retention. Zero disables each limit.
	SessionMax           int           `yaml:"sessionMax" validate:"gte=0"`
	SessionMaxIdle       time.Duration `yaml:"sessionMaxIdle" validate:"gte=0"`
	SessionPruneInterval time.Duration `yaml:"sessionPruneInterval" validate:"gte=0"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *AppConfig {
	return &AppConfig{
		AppEnv:               "dev",
		LogLevel:             slog.LevelInfo,
		Port:                 "8080",
		GeocodingURL:         providers.DefaultGeocodingURL,
		ForecastURL:          providers.DefaultForecastURL,
		HTTPTimeout:          10 * time.Second,
		HTTPMaxRetries:       0,
		ValidatePlaceTypes:   true,
		AllowedFeatureCodes:  append([]string(nil), providers.SettlementFeatureCodes...),
		GeocodingCount:       5,
		DiscardStale:         true,
		SessionMax:           1000,
		SessionMaxIdle:       30 * time.Minute,
		SessionPruneInterval: 5 * time.Minute,
	}
}

// Load reads configuration from an optional YAML file named by CONFIG_FILE,
// then from environment, on top of Defaults. The caller loads .env first.
func Load() (*AppConfig, error) {
	cfg := Defaults()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *AppConfig) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var file struct {
		AppConfig `yaml:",inline"`
		LogLevel  string `yaml:"logLevel"`
	}
	file.AppConfig = *cfg
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	*cfg = file.AppConfig
	if file.LogLevel != "" {
		lvl, err := parseLevel(file.LogLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = lvl
	}
	return nil
}

func applyEnv(cfg *AppConfig) error {
	cfg.AppEnv = getenvDefault("APP_ENV", cfg.AppEnv)
	cfg.Port = getenvDefault("PORT", cfg.Port)
	cfg.GeocodingURL = getenvDefault("GEOCODING_URL", cfg.GeocodingURL)
	cfg.ForecastURL = getenvDefault("FORECAST_URL", cfg.ForecastURL)

	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		lvl, err := parseLevel(v)
		if err != nil {
			return err
		}
		cfg.LogLevel = lvl
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", cfg.HTTPTimeout); err != nil {
		return err
	}
	if cfg.SessionMaxIdle, err = getenvDuration("SESSION_MAX_IDLE", cfg.SessionMaxIdle); err != nil {
		return err
	}
	if cfg.SessionPruneInterval, err = getenvDuration("SESSION_PRUNE_INTERVAL", cfg.SessionPruneInterval); err != nil {
		return err
	}
	if cfg.HTTPMaxRetries, err = getenvInt("HTTP_MAX_RETRIES", cfg.HTTPMaxRetries); err != nil {
		return err
	}
	if cfg.GeocodingCount, err = getenvInt("GEOCODING_COUNT", cfg.GeocodingCount); err != nil {
		return err
	}
	if cfg.SessionMax, err = getenvInt("SESSION_MAX", cfg.SessionMax); err != nil {
		return err
	}
	if cfg.ValidatePlaceTypes, err = getenvBool("VALIDATE_PLACE_TYPES", cfg.ValidatePlaceTypes); err != nil {
		return err
	}
	if cfg.DiscardStale, err = getenvBool("DISCARD_STALE", cfg.DiscardStale); err != nil {
		return err
	}

	if v := strings.TrimSpace(os.Getenv("ALLOWED_FEATURE_CODES")); v != "" {
		var codes []string
		for _, code := range strings.Split(v, ",") {
			if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
				codes = append(codes, code)
			}
		}
		cfg.AllowedFeatureCodes = codes
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
