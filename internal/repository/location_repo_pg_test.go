package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/avoicu/airdesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

type errRow struct {
	err error
}

func (r errRow) Scan(dest ...any) error { return r.err }

type boolRow struct {
	v bool
}

func (r boolRow) Scan(dest ...any) error {
	*dest[0].(*bool) = r.v
	return nil
}

type cityRow struct {
	city domain.City
}

func (r cityRow) Scan(dest ...any) error {
	*dest[0].(*int64) = r.city.ID
	*dest[1].(*string) = r.city.Name
	*dest[2].(*string) = r.city.Country
	return nil
}

type airportRow struct {
	airport domain.Airport
}

func (r airportRow) Scan(dest ...any) error {
	*dest[0].(*int64) = r.airport.ID
	*dest[1].(*string) = r.airport.Name
	*dest[2].(*string) = r.airport.Code
	*dest[3].(*int64) = r.airport.CityID
	return nil
}

// stubQuerier hands out canned rows in call order.
type stubQuerier struct {
	rows []pgx.Row
}

func (s *stubQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	row := s.rows[0]
	s.rows = s.rows[1:]
	return row
}

func (s *stubQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (s *stubQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func TestNewLocationRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewLocationRepository(pool)
	assert.NotNil(t, repo)
}

func TestPGLocationRepository_CreateCity_DuplicateReturnsExistingID(t *testing.T) {
	db := &stubQuerier{rows: []pgx.Row{
		errRow{err: &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "cities_name_key"}},
		cityRow{city: domain.City{ID: 1, Name: "Paris", Country: "France"}},
	}}
	repo := &PGLocationRepository{db: db}

	city := &domain.City{Name: "Paris", Country: "France"}
	id, err := repo.CreateCity(context.Background(), city)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, int64(1), city.ID)
	assert.Empty(t, db.rows)
}

func TestPGLocationRepository_CreateCity_StorageError(t *testing.T) {
	db := &stubQuerier{rows: []pgx.Row{
		errRow{err: errors.New("connection refused")},
	}}
	repo := &PGLocationRepository{db: db}

	_, err := repo.CreateCity(context.Background(), &domain.City{Name: "Paris", Country: "France"})

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestPGLocationRepository_CreateAirport_DuplicateReturnsExistingID(t *testing.T) {
	db := &stubQuerier{rows: []pgx.Row{
		boolRow{v: true},
		errRow{err: &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "airports_code_key"}},
		airportRow{airport: domain.Airport{ID: 3, Name: "Charles de Gaulle", Code: "CDG", CityID: 1}},
	}}
	repo := &PGLocationRepository{db: db}

	airport := &domain.Airport{Name: "Charles de Gaulle", Code: "CDG", CityID: 1}
	id, err := repo.CreateAirport(context.Background(), airport)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, int64(3), airport.ID)
	assert.Empty(t, db.rows)
}

func TestPGLocationRepository_CreateAirport_MissingCity(t *testing.T) {
	db := &stubQuerier{rows: []pgx.Row{
		boolRow{v: false},
	}}
	repo := &PGLocationRepository{db: db}

	_, err := repo.CreateAirport(context.Background(), &domain.Airport{Name: "Charles de Gaulle", Code: "CDG", CityID: 42})

	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
	assert.Empty(t, db.rows)
}
