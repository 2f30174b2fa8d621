package repository

import (
	"context"
	"fmt"

	"github.com/avoicu/airdesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *domain.Staff) (int64, error)
	List(ctx context.Context) ([]domain.Staff, error)
	ListByRole(ctx context.Context, role domain.StaffRole) ([]domain.Staff, error)
	Delete(ctx context.Context, id int64) error
	AssignCrew(ctx context.Context, flightNumber string, staffIDs []int64) error
	ListCrew(ctx context.Context, flightNumber string) ([]domain.Staff, error)
}

type PGStaffRepository struct {
	db *pgxpool.Pool
}

func NewStaffRepository(db *pgxpool.Pool) StaffRepository {
	return &PGStaffRepository{db: db}
}

func (r *PGStaffRepository) Create(ctx context.Context, staff *domain.Staff) (int64, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO staff (name, age, role, flight_hours, has_advanced_cert, languages)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING staff_id`,
		staff.Name, staff.Age, staff.Role, staff.FlightHours, staff.HasAdvancedCert, staff.Languages).
		Scan(&staff.ID)
	if err != nil {
		return 0, fmt.Errorf("insert staff: %w", mapError(err))
	}
	return staff.ID, nil
}

func (r *PGStaffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	return r.query(ctx,
		`SELECT staff_id, name, age, role, flight_hours, has_advanced_cert, languages
		 FROM staff ORDER BY role, name`)
}

func (r *PGStaffRepository) ListByRole(ctx context.Context, role domain.StaffRole) ([]domain.Staff, error) {
	return r.query(ctx,
		`SELECT staff_id, name, age, role, flight_hours, has_advanced_cert, languages
		 FROM staff WHERE role=$1 ORDER BY name`, role)
}

func (r *PGStaffRepository) query(ctx context.Context, sql string, args ...any) ([]domain.Staff, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", mapError(err))
	}
	defer rows.Close()

	staff := make([]domain.Staff, 0)
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Age, &s.Role, &s.FlightHours, &s.HasAdvancedCert, &s.Languages); err != nil {
			return nil, mapError(err)
		}
		staff = append(staff, s)
	}
	return staff, mapError(rows.Err())
}

func (r *PGStaffRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM staff WHERE staff_id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete staff: %w", mapError(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AssignCrew links N staff members to a flight in a single transaction:
// either every link row lands or none of them do.
func (r *PGStaffRepository) AssignCrew(ctx context.Context, flightNumber string, staffIDs []int64) error {
	if len(staffIDs) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin crew assignment: %w", mapError(err))
	}
	defer tx.Rollback(ctx)

	for _, staffID := range staffIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO flight_crew (flight_number, staff_id) VALUES ($1, $2)`,
			flightNumber, staffID); err != nil {
			return fmt.Errorf("assign crew member %d: %w", staffID, mapError(err))
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit crew assignment: %w", mapError(err))
	}
	return nil
}

func (r *PGStaffRepository) ListCrew(ctx context.Context, flightNumber string) ([]domain.Staff, error) {
	return r.query(ctx,
		`SELECT s.staff_id, s.name, s.age, s.role, s.flight_hours, s.has_advanced_cert, s.languages
		 FROM flight_crew fc JOIN staff s ON fc.staff_id = s.staff_id
		 WHERE fc.flight_number=$1 ORDER BY s.role, s.name`, flightNumber)
}

var _ StaffRepository = (*PGStaffRepository)(nil)
