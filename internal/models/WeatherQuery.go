package models

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxCityLength = 100

// titleCase canonicalizes free text the way the reply templates expect.
// A Caser carries internal state, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// ValidationError marks malformed user input. It is user-facing and is never
// treated as a system fault.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// WeatherQuery is a validated, canonicalized city name. Construct it through
// NewWeatherQuery; the zero value is not meaningful.
type WeatherQuery struct {
	City string
}

// NewWeatherQuery trims and title-cases the city name. It fails when the
// input is empty, longer than 100 characters, or contains a digit.
// Validating an already-validated city yields the same result.
func NewWeatherQuery(city string) (WeatherQuery, error) {
	trimmed := strings.TrimSpace(city)

	if trimmed == "" {
		return WeatherQuery{}, &ValidationError{Reason: "City name cannot be empty"}
	}

	if utf8.RuneCountInString(trimmed) > maxCityLength {
		return WeatherQuery{}, &ValidationError{Reason: fmt.Sprintf("City name cannot exceed %d characters", maxCityLength)}
	}

	if strings.ContainsFunc(trimmed, unicode.IsDigit) {
		return WeatherQuery{}, &ValidationError{Reason: "City name cannot contain numbers"}
	}

	return WeatherQuery{City: titleCase(trimmed)}, nil
}
