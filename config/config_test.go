package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cnf, err := New()
	require.NoError(t, err)
	require.NotNil(t, cnf)

	assert.Equal(t, "weather-bot", cnf.AppName)
	assert.Equal(t, "1.0.0", cnf.AppVersion)
	assert.Equal(t, "0.0.0.0", cnf.Host)
	assert.Equal(t, "8000", cnf.Port)
	assert.False(t, cnf.Debug)
	assert.Equal(t, "weather_bot.db", cnf.DatabasePath)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cnf.WeatherAPIURL)
	assert.Equal(t, "London", cnf.DefaultCity)
	assert.Equal(t, "UK", cnf.DefaultCountry)
}

func TestNewEnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "test-bot")
	t.Setenv("API_PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("WEATHER_API_KEY", "secret")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")

	cnf, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test-bot", cnf.AppName)
	assert.Equal(t, "9090", cnf.Port)
	assert.True(t, cnf.Debug)
	assert.Equal(t, "secret", cnf.WeatherAPIKey)
	assert.Equal(t, "/tmp/test.db", cnf.DatabasePath)
}

func TestWeatherConfigured(t *testing.T) {
	cnf := &Config{}
	assert.False(t, cnf.WeatherConfigured())

	cnf.WeatherAPIKey = PlaceholderAPIKey
	assert.False(t, cnf.WeatherConfigured())

	cnf.WeatherAPIKey = "real-key"
	assert.True(t, cnf.WeatherConfigured())
}

func TestTwilioConfigured(t *testing.T) {
	cnf := &Config{}
	assert.False(t, cnf.TwilioConfigured())

	cnf.TwilioAccountSID = "AC123"
	assert.False(t, cnf.TwilioConfigured())

	cnf.TwilioAuthToken = "token"
	assert.True(t, cnf.TwilioConfigured())
}
