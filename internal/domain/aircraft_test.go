package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCommercialAircraft(t *testing.T) {
	aircraft, err := NewCommercialAircraft("A320neo", "Airbus", 6300, 180)
	assert.NoError(t, err)
	assert.True(t, aircraft.CanCarryPassengers())

	_, err = NewCommercialAircraft("A320neo", "Airbus", 6300, 0)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = NewCommercialAircraft("", "Airbus", 6300, 180)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestNewCargoAircraft(t *testing.T) {
	aircraft, err := NewCargoAircraft("747-8F", "Boeing", 8100, 137000)
	assert.NoError(t, err)
	assert.False(t, aircraft.CanCarryPassengers())

	_, err = NewCargoAircraft("747-8F", "Boeing", 8100, -1)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestNewMilitaryAircraft(t *testing.T) {
	aircraft, err := NewMilitaryAircraft("F-16", "Lockheed", 4200, true)
	assert.NoError(t, err)
	assert.True(t, aircraft.Armed)
	assert.False(t, aircraft.CanCarryPassengers())
}
