package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeatherQueryNormalizes(t *testing.T) {
	query, err := NewWeatherQuery("  london  ")
	require.NoError(t, err)
	assert.Equal(t, "London", query.City)

	query, err = NewWeatherQuery("new york")
	require.NoError(t, err)
	assert.Equal(t, "New York", query.City)

	query, err = NewWeatherQuery("LONDON")
	require.NoError(t, err)
	assert.Equal(t, "London", query.City)
}

func TestNewWeatherQueryIdempotent(t *testing.T) {
	first, err := NewWeatherQuery("  san Francisco ")
	require.NoError(t, err)

	second, err := NewWeatherQuery(first.City)
	require.NoError(t, err)
	assert.Equal(t, first.City, second.City)
}

func TestNewWeatherQueryRejectsEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := NewWeatherQuery(input)
		require.Error(t, err, "input %q", input)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Reason, "empty")
	}
}

func TestNewWeatherQueryRejectsDigits(t *testing.T) {
	for _, input := range []string{"123", "London1", "4th Avenue City"} {
		_, err := NewWeatherQuery(input)
		require.Error(t, err, "input %q", input)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Reason, "numbers")
	}
}

func TestNewWeatherQueryRejectsTooLong(t *testing.T) {
	_, err := NewWeatherQuery(strings.Repeat("a", 101))
	require.Error(t, err)

	_, err = NewWeatherQuery(strings.Repeat("a", 100))
	require.NoError(t, err)
}

func TestNewWeatherQueryLengthCountsRunes(t *testing.T) {
	// 60 Cyrillic letters take 120 bytes but are well within the limit.
	query, err := NewWeatherQuery(strings.Repeat("ж", 60))
	require.NoError(t, err)
	assert.Equal(t, 60, len([]rune(query.City)))

	_, err = NewWeatherQuery(strings.Repeat("ж", 100))
	require.NoError(t, err)

	_, err = NewWeatherQuery(strings.Repeat("ж", 101))
	require.Error(t, err)
}

func TestNewWeatherQueryHyphenatedCity(t *testing.T) {
	query, err := NewWeatherQuery("new-york")
	require.NoError(t, err)
	assert.Equal(t, "New-York", query.City)

	query, err = NewWeatherQuery("stratford-upon-avon")
	require.NoError(t, err)
	assert.Equal(t, "Stratford-Upon-Avon", query.City)
}
