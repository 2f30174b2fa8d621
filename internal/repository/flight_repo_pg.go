package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avoicu/airdesk/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StoredFlight pairs a loaded flight with the denormalized
// available-seat column. The repository does not rehydrate the booked
// list itself; that is the inventory ledger's job, performed by the
// service layer on loaded objects.
type StoredFlight struct {
	Flight    *domain.Flight
	Available int
}

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight, pilotID, copilotID *int64) error
	List(ctx context.Context) ([]StoredFlight, error)
	GetByNumber(ctx context.Context, number string) (*StoredFlight, error)
	ListByRoute(ctx context.Context, from, to string) ([]StoredFlight, error)
	UpdateAvailableSeats(ctx context.Context, number string, available int) error
	ReserveSeat(ctx context.Context, number string) (int, error)
	ReleaseSeat(ctx context.Context, number string) error
	Delete(ctx context.Context, number string) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `flight_id, flight_number, from_airport, to_airport, departure_time,
	base_price_cents, total_seats, available_seats, flight_type, created_at, updated_at`

// Create inserts the flight with available seats backfilled to the full
// capacity.
func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight, pilotID, copilotID *int64) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO flights (flight_number, from_airport, to_airport, departure_time,
			base_price_cents, total_seats, available_seats, pilot_id, copilot_id, flight_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $6, $7, $8, $9)
		 RETURNING flight_id, created_at, updated_at`,
		flight.Number, flight.FromAirport, flight.ToAirport, flight.DepartureTime,
		flight.BasePriceCents(), flight.TotalSeats(), pilotID, copilotID, int(flight.Type)).
		Scan(&flight.ID, &flight.CreatedAt, &flight.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert flight: %w", mapError(err))
	}
	return nil
}

func scanStoredFlight(row interface{ Scan(...any) error }) (*StoredFlight, error) {
	var (
		id             int64
		number         string
		from, to       string
		departure      time.Time
		basePriceCents int64
		totalSeats     int
		available      int
		ftype          int
		createdAt      time.Time
		updatedAt      time.Time
	)
	if err := row.Scan(&id, &number, &from, &to, &departure,
		&basePriceCents, &totalSeats, &available, &ftype, &createdAt, &updatedAt); err != nil {
		return nil, mapError(err)
	}
	flight, err := domain.NewFlight(number, from, to, departure, basePriceCents, totalSeats, domain.FlightType(ftype))
	if err != nil {
		return nil, fmt.Errorf("stored flight %s: %w", number, err)
	}
	flight.ID = id
	flight.CreatedAt = createdAt
	flight.UpdatedAt = updatedAt
	return &StoredFlight{Flight: flight, Available: available}, nil
}

func (r *PGFlightRepository) List(ctx context.Context) ([]StoredFlight, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+flightColumns+` FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", mapError(err))
	}
	defer rows.Close()

	flights := make([]StoredFlight, 0)
	for rows.Next() {
		sf, err := scanStoredFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *sf)
	}
	return flights, mapError(rows.Err())
}

func (r *PGFlightRepository) GetByNumber(ctx context.Context, number string) (*StoredFlight, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+flightColumns+` FROM flights WHERE flight_number=$1`, strings.TrimSpace(number))
	return scanStoredFlight(row)
}

func (r *PGFlightRepository) ListByRoute(ctx context.Context, from, to string) ([]StoredFlight, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+flightColumns+` FROM flights
		 WHERE from_airport=$1 AND to_airport=$2
		 ORDER BY departure_time`,
		strings.ToUpper(strings.TrimSpace(from)), strings.ToUpper(strings.TrimSpace(to)))
	if err != nil {
		return nil, fmt.Errorf("list flights by route: %w", mapError(err))
	}
	defer rows.Close()

	flights := make([]StoredFlight, 0)
	for rows.Next() {
		sf, err := scanStoredFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *sf)
	}
	return flights, mapError(rows.Err())
}

// UpdateAvailableSeats writes an absolute count back. Used by the audit
// sweep; the booking path goes through ReserveSeat instead.
func (r *PGFlightRepository) UpdateAvailableSeats(ctx context.Context, number string, available int) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE flights SET available_seats=$1, updated_at=now() WHERE flight_number=$2`,
		available, number)
	if err != nil {
		return fmt.Errorf("update available seats: %w", mapError(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReserveSeat decrements the seat count atomically: the conditional
// UPDATE is the storage-level guard against a lost-update race between
// two bookings on the same flight.
func (r *PGFlightRepository) ReserveSeat(ctx context.Context, number string) (int, error) {
	var available int
	err := r.db.QueryRow(ctx,
		`UPDATE flights SET available_seats = available_seats - 1, updated_at = now()
		 WHERE flight_number=$1 AND available_seats > 0
		 RETURNING available_seats`, number).Scan(&available)
	if err != nil {
		// No row matched: either the flight is unknown or it is full.
		if errors.Is(mapError(err), domain.ErrNotFound) {
			if _, lookErr := r.GetByNumber(ctx, number); lookErr != nil {
				return 0, lookErr
			}
			return 0, fmt.Errorf("%w on flight %s", domain.ErrCapacityExceeded, number)
		}
		return 0, fmt.Errorf("reserve seat: %w", mapError(err))
	}
	return available, nil
}

func (r *PGFlightRepository) ReleaseSeat(ctx context.Context, number string) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE flights SET available_seats = available_seats + 1, updated_at = now()
		 WHERE flight_number=$1 AND available_seats < total_seats`, number)
	if err != nil {
		return fmt.Errorf("release seat: %w", mapError(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, number string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM flights WHERE flight_number=$1`, number)
	if err != nil {
		return fmt.Errorf("delete flight: %w", mapError(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
