package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type TicketClass string

const (
	TicketClassEconomy  TicketClass = "Economy"
	TicketClassBusiness TicketClass = "Business"
)

func ParseTicketClass(s string) (TicketClass, error) {
	switch TicketClass(s) {
	case TicketClassEconomy:
		return TicketClassEconomy, nil
	case TicketClassBusiness:
		return TicketClassBusiness, nil
	default:
		return "", fmt.Errorf("%w: unknown ticket class %q", ErrInvalidValue, s)
	}
}

// Ticket is the in-memory record attached to a flight's booked list.
// It is immutable after construction; the persisted counterpart is a
// Booking row.
type Ticket struct {
	ID           string      `json:"id"`
	FlightNumber string      `json:"flight_number"`
	Passenger    string      `json:"passenger"`
	SeatNumber   string      `json:"seat_number"`
	Class        TicketClass `json:"class"`
}

func NewTicket(class TicketClass, flightNumber, passenger, seatNumber string) Ticket {
	return Ticket{
		ID:           uuid.NewString(),
		FlightNumber: flightNumber,
		Passenger:    passenger,
		SeatNumber:   seatNumber,
		Class:        class,
	}
}
