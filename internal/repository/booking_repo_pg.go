package repository

import (
	"context"
	"fmt"

	"github.com/avoicu/airdesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	CreatePassenger(ctx context.Context, passenger *domain.Passenger) (int64, error)
	ListPassengers(ctx context.Context) ([]domain.Passenger, error)
	DeletePassenger(ctx context.Context, id int64) error
	Record(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context) ([]domain.Booking, error)
	ListByFlight(ctx context.Context, flightNumber string) ([]domain.Booking, error)
	CountByFlight(ctx context.Context, flightNumber string) (int, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) CreatePassenger(ctx context.Context, passenger *domain.Passenger) (int64, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO passengers (full_name, passport_number) VALUES ($1, $2) RETURNING passenger_id`,
		passenger.FullName, passenger.PassportNumber).Scan(&passenger.ID)
	if err != nil {
		return 0, fmt.Errorf("insert passenger: %w", mapError(err))
	}
	return passenger.ID, nil
}

func (r *PGBookingRepository) ListPassengers(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx,
		`SELECT passenger_id, full_name, passport_number FROM passengers ORDER BY passenger_id`)
	if err != nil {
		return nil, fmt.Errorf("list passengers: %w", mapError(err))
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.FullName, &p.PassportNumber); err != nil {
			return nil, mapError(err)
		}
		passengers = append(passengers, p)
	}
	return passengers, mapError(rows.Err())
}

// DeletePassenger removes a passenger together with their bookings.
// Bookings reference passengers, so the cleanup order matters and both
// deletes run in one transaction.
func (r *PGBookingRepository) DeletePassenger(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin passenger delete: %w", mapError(err))
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE passenger_id=$1`, id); err != nil {
		return fmt.Errorf("delete passenger bookings: %w", mapError(err))
	}
	cmd, err := tx.Exec(ctx, `DELETE FROM passengers WHERE passenger_id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete passenger: %w", mapError(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit passenger delete: %w", mapError(err))
	}
	return nil
}

func (r *PGBookingRepository) Record(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO bookings (flight_number, passenger_id, seat_number, ticket_class, final_price_cents)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING booking_id, booked_at`,
		booking.FlightNumber, booking.PassengerID, booking.SeatNumber, booking.Class, booking.PriceCents).
		Scan(&booking.ID, &booking.BookedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", mapError(err))
	}
	return nil
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return r.query(ctx,
		`SELECT booking_id, flight_number, passenger_id, seat_number, ticket_class, final_price_cents, booked_at
		 FROM bookings ORDER BY booked_at`)
}

func (r *PGBookingRepository) ListByFlight(ctx context.Context, flightNumber string) ([]domain.Booking, error) {
	return r.query(ctx,
		`SELECT booking_id, flight_number, passenger_id, seat_number, ticket_class, final_price_cents, booked_at
		 FROM bookings WHERE flight_number=$1 ORDER BY booked_at`, flightNumber)
}

func (r *PGBookingRepository) query(ctx context.Context, sql string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", mapError(err))
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.FlightNumber, &b.PassengerID, &b.SeatNumber, &b.Class, &b.PriceCents, &b.BookedAt); err != nil {
			return nil, mapError(err)
		}
		bookings = append(bookings, b)
	}
	return bookings, mapError(rows.Err())
}

func (r *PGBookingRepository) CountByFlight(ctx context.Context, flightNumber string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM bookings WHERE flight_number=$1`, flightNumber).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", mapError(err))
	}
	return count, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
