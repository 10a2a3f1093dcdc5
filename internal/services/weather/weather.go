package weather

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weather-bot/internal/models"
	"weather-bot/internal/repositories"
	"weather-bot/internal/storage"
	"weather-bot/pkg/logger"
)

// Service fetches current weather through the configured provider and keeps
// a best-effort record of every successful fetch.
type Service struct {
	provider       repositories.WeatherProvider
	store          *storage.Store
	defaultCity    string
	defaultCountry string
	l              *logger.Logger
}

func NewService(provider repositories.WeatherProvider, store *storage.Store, defaultCity, defaultCountry string, l *logger.Logger) *Service {
	return &Service{
		provider:       provider,
		store:          store,
		defaultCity:    defaultCity,
		defaultCountry: defaultCountry,
		l:              l,
	}
}

// Current fetches the weather for a city. On success the observation is
// persisted; a write failure is logged and swallowed, it never changes the
// outcome once the fetch succeeded.
func (s *Service) Current(ctx context.Context, city, country string) (models.Report, error) {
	if city == "" {
		city = s.defaultCity
	}
	if country == "" {
		country = s.defaultCountry
	}

	s.l.Info("fetching weather data", map[string]any{"city": city, "country": country})

	report, err := s.provider.Current(ctx, city, country)
	if err != nil {
		s.l.Error(fmt.Errorf("failed to fetch weather data for %s: %w", city, err))
		return models.Report{}, err
	}

	if s.store != nil {
		if id, saveErr := s.store.Save(ctx, models.RecordFromReport(report)); saveErr != nil {
			s.l.Error(fmt.Errorf("failed to store weather data for %s: %w", report.City, saveErr))
		} else {
			s.l.Info("weather data stored in database", map[string]any{"city": report.City, "record_id": id})
		}
	}

	return report, nil
}

// FormatMessage renders either outcome of a fetch: a multi-line summary for
// a report, a one-line error string otherwise. It never panics.
func (s *Service) FormatMessage(report models.Report, err error) string {
	if err != nil {
		return fmt.Sprintf("Weather Error: %s", err.Error())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Weather Update for %s\n\n", report.City)
	fmt.Fprintf(&b, "Temperature: %g°C\n", report.Temperature)
	fmt.Fprintf(&b, "Conditions: %s", cases.Title(language.Und).String(report.Description))

	if report.FeelsLike != nil {
		fmt.Fprintf(&b, "\nFeels like: %g°C", *report.FeelsLike)
	}
	if report.Humidity != nil {
		fmt.Fprintf(&b, "\nHumidity: %d%%", *report.Humidity)
	}

	fmt.Fprintf(&b, "\n\nLast updated: %s", report.Timestamp.Format("2006-01-02 15:04:05"))

	return b.String()
}
