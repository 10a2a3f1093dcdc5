package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weather-bot/internal/models"
	"weather-bot/pkg/logger"
)

// OpenWeatherProvider fetches current conditions from OpenWeatherMap.
type OpenWeatherProvider struct {
	BaseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherProvider(baseURL, apiKey string, l *logger.Logger, httpClient HTTPClient) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return "openweathermap"
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64  `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Dt int64 `json:"dt"`
}

func (p *OpenWeatherProvider) Current(ctx context.Context, city, country string) (models.Report, error) {
	values := url.Values{}
	values.Set("q", fmt.Sprintf("%s,%s", city, country))
	values.Set("appid", p.APIKey)
	values.Set("units", "metric")

	endpoint := fmt.Sprintf("%s/weather?%s", p.BaseURL, values.Encode())

	p.l.Info("making openweathermap API request", map[string]any{
		"city":    city,
		"country": country,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Report{}, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response openWeatherResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.Report{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	report := models.Report{
		City:        response.Name,
		Temperature: response.Main.Temp,
		Humidity:    response.Main.Humidity,
		FeelsLike:   response.Main.FeelsLike,
		Timestamp:   time.Unix(response.Dt, 0).UTC(),
	}
	if len(response.Weather) > 0 {
		report.Description = response.Weather[0].Description
	}

	p.l.Info("weather data fetched successfully", map[string]any{
		"city":        report.City,
		"temperature": report.Temperature,
	})

	return report, nil
}
