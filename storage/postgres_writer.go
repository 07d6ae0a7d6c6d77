package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"energy-dashboard/models"
	"energy-dashboard/utils"
)

// PostgresWriter mirrors the cleaned dataset into PostgreSQL so it can be
// queried with plain SQL alongside the dashboard.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{MaxAttempts: 5, BaseDelay: 2 * time.Second, Logger: logger}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS plants (
			id          SERIAL PRIMARY KEY,
			name        TEXT          NOT NULL,
			country     TEXT          NOT NULL,
			fuel        TEXT          NOT NULL,
			capacity_mw NUMERIC(12,2) NOT NULL DEFAULT 0,
			latitude    NUMERIC(9,6)  NOT NULL,
			longitude   NUMERIC(9,6)  NOT NULL,
			loaded_at   TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_plants_identity ON plants(name, fuel, latitude, longitude);
		CREATE INDEX IF NOT EXISTS idx_plants_country  ON plants(country);
		CREATE INDEX IF NOT EXISTS idx_plants_fuel     ON plants(fuel);
		CREATE INDEX IF NOT EXISTS idx_plants_capacity ON plants(capacity_mw);
	`)
	return err
}

// Clear deletes all existing plants from the table.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM plants")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write batch-inserts ALL plants, clearing old data first.
func (pw *PostgresWriter) Write(plants []*models.Plant) error {
	if len(plants) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 500
	for i := 0; i < len(plants); i += batchSize {
		end := i + batchSize
		if end > len(plants) {
			end = len(plants)
		}
		if err := pw.insertBatch(plants[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*models.Plant) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*6)

	for idx, p := range batch {
		base := idx * 6
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6))
		valueArgs = append(valueArgs,
			p.Name, p.Country, p.Fuel, p.CapacityMW, p.Latitude, p.Longitude)
	}

	query := fmt.Sprintf(`
		INSERT INTO plants (name, country, fuel, capacity_mw, latitude, longitude)
		VALUES %s
		ON CONFLICT (name, fuel, latitude, longitude) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchAll retrieves all stored plants in insert order.
func (pw *PostgresWriter) FetchAll() ([]*models.Plant, error) {
	rows, err := pw.db.Query(`
		SELECT name, country, fuel, capacity_mw, latitude, longitude
		FROM plants
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var plants []*models.Plant
	for rows.Next() {
		p := &models.Plant{}
		if err := rows.Scan(
			&p.Name, &p.Country, &p.Fuel, &p.CapacityMW, &p.Latitude, &p.Longitude,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		plants = append(plants, p)
	}
	return plants, rows.Err()
}
