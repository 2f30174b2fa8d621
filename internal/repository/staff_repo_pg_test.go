package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewStaffRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewStaffRepository(pool)
	assert.NotNil(t, repo)
}
