package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS cities (
	city_id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	country TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS airports (
	airport_id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	code TEXT NOT NULL UNIQUE,
	city_id BIGINT NOT NULL REFERENCES cities(city_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS gates (
	gate_id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	airport_id BIGINT NOT NULL REFERENCES airports(airport_id) ON DELETE CASCADE,
	UNIQUE (name, airport_id)
);

CREATE TABLE IF NOT EXISTS staff (
	staff_id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	age INT NOT NULL,
	role TEXT NOT NULL CHECK (role IN ('Pilot', 'Copilot', 'Stewardess')),
	flight_hours INT NOT NULL DEFAULT 0,
	has_advanced_cert BOOLEAN NOT NULL DEFAULT FALSE,
	languages TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS flights (
	flight_id BIGSERIAL PRIMARY KEY,
	flight_number TEXT NOT NULL UNIQUE,
	from_airport TEXT NOT NULL,
	to_airport TEXT NOT NULL,
	departure_time TIMESTAMPTZ NOT NULL,
	base_price_cents BIGINT NOT NULL,
	total_seats INT NOT NULL,
	available_seats INT NOT NULL,
	pilot_id BIGINT REFERENCES staff(staff_id),
	copilot_id BIGINT REFERENCES staff(staff_id),
	flight_type INT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS passengers (
	passenger_id BIGSERIAL PRIMARY KEY,
	full_name TEXT NOT NULL,
	passport_number TEXT
);

CREATE TABLE IF NOT EXISTS bookings (
	booking_id BIGSERIAL PRIMARY KEY,
	flight_number TEXT NOT NULL,
	passenger_id BIGINT NOT NULL REFERENCES passengers(passenger_id),
	seat_number TEXT NOT NULL,
	ticket_class TEXT NOT NULL,
	final_price_cents BIGINT NOT NULL,
	booked_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS flight_crew (
	crew_id BIGSERIAL PRIMARY KEY,
	flight_number TEXT NOT NULL REFERENCES flights(flight_number) ON DELETE CASCADE,
	staff_id BIGINT NOT NULL REFERENCES staff(staff_id)
);

CREATE INDEX IF NOT EXISTS idx_airports_code ON airports (code);
CREATE INDEX IF NOT EXISTS idx_airports_city ON airports (city_id);
CREATE INDEX IF NOT EXISTS idx_gates_airport ON gates (airport_id);
CREATE INDEX IF NOT EXISTS idx_flights_route ON flights (from_airport, to_airport);
CREATE INDEX IF NOT EXISTS idx_bookings_flight ON bookings (flight_number);
`

// columnMigration adds a column that older deployments lack. Additive
// only: existing rows are backfilled, never rewritten destructively.
type columnMigration struct {
	table    string
	column   string
	alter    string
	backfill string
}

var flightMigrations = []columnMigration{
	{
		table:    "flights",
		column:   "available_seats",
		alter:    `ALTER TABLE flights ADD COLUMN available_seats INT NOT NULL DEFAULT 0`,
		backfill: `UPDATE flights SET available_seats = total_seats`,
	},
	{
		table:  "flights",
		column: "flight_type",
		alter:  `ALTER TABLE flights ADD COLUMN flight_type INT NOT NULL DEFAULT 0`,
	},
}

// InitSchema creates missing tables and applies additive column
// migrations. Safe to run on every startup.
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("create schema: %w", mapError(err))
	}

	for _, m := range flightMigrations {
		exists, err := columnExists(ctx, db, m.table, m.column)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		log.Printf("schema: adding missing column %s.%s", m.table, m.column)
		if _, err := db.Exec(ctx, m.alter); err != nil {
			return fmt.Errorf("add column %s.%s: %w", m.table, m.column, mapError(err))
		}
		if m.backfill != "" {
			if _, err := db.Exec(ctx, m.backfill); err != nil {
				return fmt.Errorf("backfill %s.%s: %w", m.table, m.column, mapError(err))
			}
		}
	}
	return nil
}

func columnExists(ctx context.Context, db *pgxpool.Pool, table, column string) (bool, error) {
	var count int
	err := db.QueryRow(ctx,
		`SELECT count(*) FROM information_schema.columns WHERE table_name=$1 AND column_name=$2`,
		table, column).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("inspect %s.%s: %w", table, column, mapError(err))
	}
	return count > 0, nil
}
