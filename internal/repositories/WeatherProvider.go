package repositories

import (
	"context"
	"net/http"
	"time"

	"weather-bot/config"
	"weather-bot/internal/models"
	"weather-bot/pkg/logger"
)

const requestTimeout = 10 * time.Second

// HTTPClient abstracts http.Client for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherProvider fetches the current weather for a city. Implementations
// return errors instead of panicking; a failed fetch is a terminal outcome
// for that request.
type WeatherProvider interface {
	Name() string
	Current(ctx context.Context, city, country string) (models.Report, error)
}

// NewWeatherProvider selects the provider once at construction: the live
// OpenWeatherMap client when a credential is configured, the deterministic
// stub otherwise. Call sites never re-check the mode.
func NewWeatherProvider(cfg *config.Config, l *logger.Logger) WeatherProvider {
	if !cfg.WeatherConfigured() {
		l.Warning("weather API key not found, running in test mode")
		return NewStubProvider()
	}

	return NewOpenWeatherProvider(cfg.WeatherAPIURL, cfg.WeatherAPIKey, l, &http.Client{Timeout: requestTimeout})
}
