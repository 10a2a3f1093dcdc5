package models

import "time"

// Record is one persisted weather observation row. Records are immutable
// after creation; there is no update path.
type Record struct {
	ID          int64     `json:"id"`
	City        string    `json:"city"`
	Temperature float64   `json:"temperature"`
	Description string    `json:"description"`
	Humidity    *int      `json:"humidity,omitempty"`
	FeelsLike   *float64  `json:"feels_like,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordFromReport maps a fetched observation onto a row ready to insert.
func RecordFromReport(r Report) Record {
	return Record{
		City:        r.City,
		Temperature: r.Temperature,
		Description: r.Description,
		Humidity:    r.Humidity,
		FeelsLike:   r.FeelsLike,
		CreatedAt:   time.Now().UTC(),
	}
}
