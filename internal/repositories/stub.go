package repositories

import (
	"context"
	"time"

	"weather-bot/internal/models"
)

// StubProvider returns canned data when no API credential is configured.
// This is an explicit offline/test mode, not a failure path.
type StubProvider struct{}

func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

func (p *StubProvider) Name() string {
	return "stub"
}

func (p *StubProvider) Current(_ context.Context, city, _ string) (models.Report, error) {
	humidity := 65
	feelsLike := 24.0

	return models.Report{
		City:        city,
		Temperature: 22.5,
		Description: "partly cloudy",
		Humidity:    &humidity,
		FeelsLike:   &feelsLike,
		Timestamp:   time.Now().UTC(),
	}, nil
}
