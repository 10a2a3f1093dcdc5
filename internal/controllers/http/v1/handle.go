package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weather-bot/internal/models"
)

var validate = validator.New()

// WeatherRequest is the POST /weather body.
type WeatherRequest struct {
	City string `json:"city" validate:"required,max=100"`
}

// ScrapeRequest is the POST /scrape body.
type ScrapeRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (r *routes) handleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "WhatsApp Weather Bot",
		"status":  "running",
	})
}

func (r *routes) handleHealth(c *fiber.Ctx) error {
	r.l.Info("health check requested")

	databaseConnected := r.store.Ping(c.Context())

	status := "healthy"
	if !databaseConnected {
		status = "unhealthy"
	}

	return c.JSON(fiber.Map{
		"status":              status,
		"twilio_configured":   r.cfg.TwilioConfigured(),
		"credentials_present": r.cfg.TwilioConfigured(),
		"database_connected":  databaseConnected,
		"timestamp":           time.Now().UTC().Format(time.RFC3339),
	})
}

func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	var req WeatherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	query, err := models.NewWeatherQuery(req.City)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: vErr.Reason})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "Internal server error"})
	}

	r.l.Info("weather API requested", map[string]any{"city": query.City})

	report, err := r.weather.Current(c.Context(), query.City, "")
	if err != nil {
		r.l.Error(fmt.Errorf("weather API failed for %s: %w", query.City, err))
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: fmt.Sprintf("Weather data not found for %s: %s", query.City, err.Error()),
		})
	}

	return c.JSON(fiber.Map{
		"city":        report.City,
		"temperature": report.Temperature,
		"description": report.Description,
		"humidity":    report.Humidity,
		"feels_like":  report.FeelsLike,
		"created_at":  report.Timestamp.Format(time.RFC3339),
	})
}

func (r *routes) handleScrapeCall(c *fiber.Ctx) error {
	var req ScrapeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	// Error-tagged results are still 200: the scrape outcome is the payload.
	result := r.scraper.Scrape(c.Context(), req.URL)
	return c.JSON(result)
}
