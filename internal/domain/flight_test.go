package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFlight_NormalizesAirports(t *testing.T) {
	flight, err := NewFlight("RO101", " otp ", "lhr", time.Now(), 15000, 180, FlightTypeCommercial)

	assert.NoError(t, err)
	assert.Equal(t, "OTP", flight.FromAirport)
	assert.Equal(t, "LHR", flight.ToAirport)
	assert.Equal(t, 180, flight.AvailableSeats())
	assert.False(t, flight.IsFullyBooked())
}

func TestNewFlight_Invalid(t *testing.T) {
	testCases := []struct {
		name       string
		number     string
		price      int64
		totalSeats int
	}{
		{name: "Empty number", number: "  ", price: 15000, totalSeats: 180},
		{name: "Negative seats", number: "RO101", price: 15000, totalSeats: -1},
		{name: "Negative price", number: "RO101", price: -100, totalSeats: 180},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			flight, err := NewFlight(tc.number, "OTP", "LHR", time.Now(), tc.price, tc.totalSeats, FlightTypeCommercial)
			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.Nil(t, flight)
		})
	}
}

func TestFlight_AddTicket_CapacityEnforced(t *testing.T) {
	flight, err := NewFlight("RO101", "OTP", "LHR", time.Now(), 15000, 2, FlightTypeCommercial)
	assert.NoError(t, err)

	assert.NoError(t, flight.AddTicket(NewTicket(TicketClassEconomy, "RO101", "A", "1B")))
	assert.NoError(t, flight.AddTicket(NewTicket(TicketClassBusiness, "RO101", "B", "1C")))
	assert.True(t, flight.IsFullyBooked())

	err = flight.AddTicket(NewTicket(TicketClassEconomy, "RO101", "C", "1D"))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 2, flight.BookedCount())
}

func TestFlight_SetTotalSeats_Negative(t *testing.T) {
	flight, err := NewFlight("RO101", "OTP", "LHR", time.Now(), 15000, 180, FlightTypeCommercial)
	assert.NoError(t, err)

	assert.ErrorIs(t, flight.SetTotalSeats(-5), ErrInvalidValue)
	assert.Equal(t, 180, flight.TotalSeats())
}

func TestFlight_JSONRoundTrip(t *testing.T) {
	flight, err := NewFlight("RO101", "OTP", "LHR", time.Date(2026, 9, 10, 8, 30, 0, 0, time.UTC), 15000, 180, FlightTypeCargo)
	assert.NoError(t, err)
	assert.NoError(t, flight.AddTicket(NewTicket(TicketClassEconomy, "RO101", "Maria Ionescu", "1B")))

	data, err := json.Marshal(flight)
	assert.NoError(t, err)

	var decoded Flight
	assert.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "RO101", decoded.Number)
	assert.Equal(t, FlightTypeCargo, decoded.Type)
	assert.Equal(t, 180, decoded.TotalSeats())
	assert.Equal(t, int64(15000), decoded.BasePriceCents())
	assert.Equal(t, 179, decoded.AvailableSeats())
	assert.Equal(t, 1, decoded.BookedCount())
}

func TestParseFlightType(t *testing.T) {
	for input, want := range map[string]FlightType{
		"":           FlightTypeCommercial,
		"Commercial": FlightTypeCommercial,
		"cargo":      FlightTypeCargo,
		"Military":   FlightTypeMilitary,
	} {
		got, err := ParseFlightType(input)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFlightType("Balloon")
	assert.ErrorIs(t, err, ErrInvalidValue)
}
