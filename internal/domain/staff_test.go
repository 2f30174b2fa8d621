package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPilot(t *testing.T) {
	pilot, err := NewPilot("Dan Petrescu", 45, 4200)
	assert.NoError(t, err)
	assert.Equal(t, RolePilot, pilot.Role)
	assert.Equal(t, 4200, pilot.FlightHours)

	_, err = NewPilot("Dan Petrescu", 45, 999)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = NewPilot("Dan Petrescu", 17, 4200)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = NewPilot("", 45, 4200)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestNewCopilot(t *testing.T) {
	copilot, err := NewCopilot("Elena Radu", 30, true)
	assert.NoError(t, err)
	assert.Equal(t, RoleCopilot, copilot.Role)
	assert.True(t, copilot.HasAdvancedCert)

	_, err = NewCopilot("Elena Radu", 30, false)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestNewStewardess(t *testing.T) {
	stewardess, err := NewStewardess("Ioana Marin", 26, " Romanian, English ")
	assert.NoError(t, err)
	assert.Equal(t, RoleStewardess, stewardess.Role)
	assert.Equal(t, "Romanian, English", stewardess.Languages)

	_, err = NewStewardess("  ", 26, "Romanian")
	assert.ErrorIs(t, err, ErrInvalidValue)
}
