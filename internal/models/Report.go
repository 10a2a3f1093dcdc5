package models

import "time"

// Report is one fetched weather observation. Humidity and FeelsLike are
// optional: the provider may omit them and they stay nil.
type Report struct {
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"`
	Description string    `json:"description"`
	Humidity    *int      `json:"humidity,omitempty"`
	FeelsLike   *float64  `json:"feels_like,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
