package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// PlaceholderAPIKey is the value shipped in .env templates; it never works
// against the live API, so it switches the bot into stub mode.
const PlaceholderAPIKey = "your_openweathermap_api_key_here"

type Config struct {
	AppName    string `envconfig:"APP_NAME" default:"weather-bot"`
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0"`
	Host       string `envconfig:"API_HOST" default:"0.0.0.0"`
	Port       string `envconfig:"API_PORT" default:"8000"`
	Debug      bool   `envconfig:"DEBUG" default:"false"`

	DatabasePath string `envconfig:"DATABASE_PATH" default:"weather_bot.db"`

	WeatherAPIURL  string `envconfig:"WEATHER_API_URL" default:"https://api.openweathermap.org/data/2.5"`
	WeatherAPIKey  string `envconfig:"WEATHER_API_KEY"`
	DefaultCity    string `envconfig:"DEFAULT_CITY" default:"London"`
	DefaultCountry string `envconfig:"DEFAULT_COUNTRY" default:"UK"`

	TwilioAccountSID   string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken    string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppFrom string `envconfig:"TWILIO_WHATSAPP_FROM"`

	WebhookVerifyToken string `envconfig:"WEBHOOK_VERIFY_TOKEN"`
}

// New reads the process environment into a Config. A .env file in the
// working directory is honored when present; real environment variables win.
func New() (*Config, error) {
	_ = godotenv.Load()

	var cnf Config
	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return &cnf, nil
}

// WeatherConfigured reports whether a usable provider credential is present.
// The placeholder key from .env templates counts as absent.
func (c *Config) WeatherConfigured() bool {
	return c.WeatherAPIKey != "" && c.WeatherAPIKey != PlaceholderAPIKey
}

// TwilioConfigured reports whether outbound WhatsApp delivery is possible.
func (c *Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != ""
}
