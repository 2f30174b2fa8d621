package repository

import (
	"errors"
	"testing"

	"github.com/avoicu/airdesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorNil(t *testing.T) {
	assert.NoError(t, mapError(nil))
}

func TestMapErrorNoRows(t *testing.T) {
	err := mapError(pgx.ErrNoRows)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMapErrorUniqueViolation(t *testing.T) {
	err := mapError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "flights_flight_number_key"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestMapErrorForeignKeyViolation(t *testing.T) {
	err := mapError(&pgconn.PgError{Code: pgForeignKeyViolation})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}

func TestMapErrorUnknown(t *testing.T) {
	err := mapError(errors.New("connection refused"))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
