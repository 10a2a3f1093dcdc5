package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"weather-bot/internal/models"
	"weather-bot/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS weather_data (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	city TEXT NOT NULL CHECK (city <> ''),
	temperature REAL NOT NULL,
	description TEXT,
	humidity INTEGER,
	feels_like REAL,
	created_at TEXT NOT NULL
)`

// created_at is stored as RFC 3339 UTC text at second precision, so
// lexicographic order matches chronological order.
const timeLayout = time.RFC3339

// Store persists weather records into SQLite.
type Store struct {
	db *sql.DB
	l  *logger.Logger
}

// Open creates the store against the given database file path.
func Open(path string, l *logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Serialize writes; SQLite allows a single writer anyway.
	db.SetMaxOpenConns(1)

	return &Store{db: db, l: l}, nil
}

// Init creates the schema. It is idempotent and safe to call on every
// process start.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	s.l.Info("database initialized successfully")
	return nil
}

// Save inserts one record and returns its auto-increment id.
func (s *Store) Save(ctx context.Context, record models.Record) (int64, error) {
	query := `INSERT INTO weather_data (city, temperature, description, humidity, feels_like, created_at)
              VALUES (?, ?, ?, ?, ?, ?)`

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, query,
		record.City,
		record.Temperature,
		record.Description,
		record.Humidity,
		record.FeelsLike,
		createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	return id, nil
}

// ByCity returns all records for a city, newest first. Used by health paths
// and tests only.
func (s *Store) ByCity(ctx context.Context, city string) ([]models.Record, error) {
	query := `SELECT id, city, temperature, description, humidity, feels_like, created_at
              FROM weather_data WHERE city = ? ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, city)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var r models.Record
		var createdAt string
		if err := rows.Scan(&r.ID, &r.City, &r.Temperature, &r.Description, &r.Humidity, &r.FeelsLike, &createdAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		if r.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return records, nil
}

// DeleteByCity removes all records for a city. Test teardown only.
func (s *Store) DeleteByCity(ctx context.Context, city string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM weather_data WHERE city = ?`, city); err != nil {
		return fmt.Errorf("delete records: %w", err)
	}
	return nil
}

// Ping issues a trivial round-trip query. It reports false on any failure
// and never panics; this is the system health signal.
func (s *Store) Ping(ctx context.Context) bool {
	var one int
	if err := s.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		s.l.Error(fmt.Errorf("database connection test failed: %w", err))
		return false
	}
	return true
}

func (s *Store) Close() error {
	return s.db.Close()
}
