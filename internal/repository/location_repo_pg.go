package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/avoicu/airdesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgQuerier is the subset of pgxpool.Pool the repository touches.
// Tests substitute it to reach driver-error branches such as
// unique-violation recovery.
type pgQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type LocationRepository interface {
	CreateCity(ctx context.Context, city *domain.City) (int64, error)
	ListCities(ctx context.Context) ([]domain.City, error)
	GetCityByName(ctx context.Context, name string) (*domain.City, error)
	DeleteCity(ctx context.Context, id int64) error

	CreateAirport(ctx context.Context, airport *domain.Airport) (int64, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	GetAirportByCode(ctx context.Context, code string) (*domain.Airport, error)
	DeleteAirport(ctx context.Context, id int64) error

	CreateGate(ctx context.Context, gate *domain.Gate) (int64, error)
	ListGates(ctx context.Context) ([]domain.Gate, error)
	DeleteGate(ctx context.Context, id int64) error
}

type PGLocationRepository struct {
	db pgQuerier
}

func NewLocationRepository(db *pgxpool.Pool) LocationRepository {
	return &PGLocationRepository{db: db}
}

// CreateCity inserts the city and returns its id. A name collision is
// not a hard failure: the existing row's id is returned instead.
func (r *PGLocationRepository) CreateCity(ctx context.Context, city *domain.City) (int64, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO cities (name, country) VALUES ($1, $2) RETURNING city_id`,
		city.Name, city.Country).Scan(&city.ID)
	if err != nil {
		if isUniqueViolation(err) {
			existing, lookErr := r.GetCityByName(ctx, city.Name)
			if lookErr != nil {
				return 0, lookErr
			}
			city.ID = existing.ID
			return existing.ID, nil
		}
		return 0, fmt.Errorf("insert city: %w", mapError(err))
	}
	return city.ID, nil
}

func (r *PGLocationRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	rows, err := r.db.Query(ctx, `SELECT city_id, name, country FROM cities ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", mapError(err))
	}
	defer rows.Close()

	cities := make([]domain.City, 0)
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Country); err != nil {
			return nil, mapError(err)
		}
		cities = append(cities, c)
	}
	return cities, mapError(rows.Err())
}

func (r *PGLocationRepository) GetCityByName(ctx context.Context, name string) (*domain.City, error) {
	var c domain.City
	err := r.db.QueryRow(ctx,
		`SELECT city_id, name, country FROM cities WHERE name=$1`,
		strings.TrimSpace(name)).Scan(&c.ID, &c.Name, &c.Country)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

// DeleteCity removes the city; airports and their gates go with it via
// the schema's ON DELETE CASCADE.
func (r *PGLocationRepository) DeleteCity(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM cities WHERE city_id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete city: %w", mapError(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateAirport verifies the owning city first so a dangling reference
// fails with ErrReferenceNotFound rather than a driver error. A code
// collision returns the existing airport's id.
func (r *PGLocationRepository) CreateAirport(ctx context.Context, airport *domain.Airport) (int64, error) {
	var cityExists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM cities WHERE city_id=$1)`, airport.CityID).Scan(&cityExists); err != nil {
		return 0, fmt.Errorf("check city: %w", mapError(err))
	}
	if !cityExists {
		return 0, fmt.Errorf("%w: city %d", domain.ErrReferenceNotFound, airport.CityID)
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO airports (name, code, city_id) VALUES ($1, $2, $3) RETURNING airport_id`,
		airport.Name, airport.Code, airport.CityID).Scan(&airport.ID)
	if err != nil {
		if isUniqueViolation(err) {
			existing, lookErr := r.GetAirportByCode(ctx, airport.Code)
			if lookErr != nil {
				return 0, lookErr
			}
			airport.ID = existing.ID
			return existing.ID, nil
		}
		return 0, fmt.Errorf("insert airport: %w", mapError(err))
	}
	return airport.ID, nil
}

func (r *PGLocationRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT airport_id, name, code, city_id FROM airports ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list airports: %w", mapError(err))
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.Code, &a.CityID); err != nil {
			return nil, mapError(err)
		}
		airports = append(airports, a)
	}
	return airports, mapError(rows.Err())
}

func (r *PGLocationRepository) GetAirportByCode(ctx context.Context, code string) (*domain.Airport, error) {
	var a domain.Airport
	err := r.db.QueryRow(ctx,
		`SELECT airport_id, name, code, city_id FROM airports WHERE code=$1`,
		strings.ToUpper(strings.TrimSpace(code))).Scan(&a.ID, &a.Name, &a.Code, &a.CityID)
	if err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

func (r *PGLocationRepository) DeleteAirport(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM airports WHERE airport_id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete airport: %w", mapError(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateGate reports a (name, airport) collision as ErrAlreadyExists
// without resolving the existing row; gates carry no natural key worth
// returning.
func (r *PGLocationRepository) CreateGate(ctx context.Context, gate *domain.Gate) (int64, error) {
	var airportExists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM airports WHERE airport_id=$1)`, gate.AirportID).Scan(&airportExists); err != nil {
		return 0, fmt.Errorf("check airport: %w", mapError(err))
	}
	if !airportExists {
		return 0, fmt.Errorf("%w: airport %d", domain.ErrReferenceNotFound, gate.AirportID)
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO gates (name, airport_id) VALUES ($1, $2) RETURNING gate_id`,
		gate.Name, gate.AirportID).Scan(&gate.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: gate %q at airport %d", domain.ErrAlreadyExists, gate.Name, gate.AirportID)
		}
		return 0, fmt.Errorf("insert gate: %w", mapError(err))
	}
	return gate.ID, nil
}

func (r *PGLocationRepository) ListGates(ctx context.Context) ([]domain.Gate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT g.gate_id, g.name, g.airport_id
		 FROM gates g JOIN airports a ON g.airport_id = a.airport_id
		 ORDER BY a.code, g.name`)
	if err != nil {
		return nil, fmt.Errorf("list gates: %w", mapError(err))
	}
	defer rows.Close()

	gates := make([]domain.Gate, 0)
	for rows.Next() {
		var g domain.Gate
		if err := rows.Scan(&g.ID, &g.Name, &g.AirportID); err != nil {
			return nil, mapError(err)
		}
		gates = append(gates, g)
	}
	return gates, mapError(rows.Err())
}

func (r *PGLocationRepository) DeleteGate(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM gates WHERE gate_id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete gate: %w", mapError(err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ LocationRepository = (*PGLocationRepository)(nil)
