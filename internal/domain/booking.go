package domain

import "time"

// Booking is the persisted record of a sold seat. Unlike a Ticket it
// survives process restarts and is never mutated after insert.
type Booking struct {
	ID           int64       `json:"id"`
	FlightNumber string      `json:"flight_number"`
	PassengerID  int64       `json:"passenger_id"`
	SeatNumber   string      `json:"seat_number"`
	Class        TicketClass `json:"class"`
	PriceCents   int64       `json:"price_cents"`
	BookedAt     time.Time   `json:"booked_at"`
}
