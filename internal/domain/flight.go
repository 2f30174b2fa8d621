package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type FlightType int

const (
	FlightTypeCommercial FlightType = iota
	FlightTypeCargo
	FlightTypeMilitary
)

func (t FlightType) String() string {
	switch t {
	case FlightTypeCommercial:
		return "Commercial"
	case FlightTypeCargo:
		return "Cargo"
	case FlightTypeMilitary:
		return "Military"
	default:
		return fmt.Sprintf("FlightType(%d)", int(t))
	}
}

func ParseFlightType(s string) (FlightType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "commercial":
		return FlightTypeCommercial, nil
	case "cargo":
		return FlightTypeCargo, nil
	case "military":
		return FlightTypeMilitary, nil
	default:
		return 0, fmt.Errorf("%w: unknown flight type %q", ErrInvalidValue, s)
	}
}

// Flight keeps its seat and price state private so the capacity
// invariant cannot be bypassed: available seats are always derived as
// total − booked and never stored as an independent field in memory.
type Flight struct {
	ID            int64
	Number        string
	FromAirport   string
	ToAirport     string
	DepartureTime time.Time
	Type          FlightType
	CreatedAt     time.Time
	UpdatedAt     time.Time

	totalSeats     int
	basePriceCents int64
	booked         []Ticket
}

func NewFlight(number, from, to string, departure time.Time, basePriceCents int64, totalSeats int, ftype FlightType) (*Flight, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fmt.Errorf("%w: flight number cannot be empty", ErrInvalidValue)
	}
	f := &Flight{
		Number:        number,
		FromAirport:   strings.ToUpper(strings.TrimSpace(from)),
		ToAirport:     strings.ToUpper(strings.TrimSpace(to)),
		DepartureTime: departure,
		Type:          ftype,
	}
	if err := f.SetTotalSeats(totalSeats); err != nil {
		return nil, err
	}
	if err := f.SetBasePrice(basePriceCents); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Flight) SetTotalSeats(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: total seats cannot be negative", ErrInvalidValue)
	}
	f.totalSeats = n
	return nil
}

func (f *Flight) TotalSeats() int { return f.totalSeats }

func (f *Flight) SetBasePrice(cents int64) error {
	if cents < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidValue)
	}
	f.basePriceCents = cents
	return nil
}

func (f *Flight) BasePriceCents() int64 { return f.basePriceCents }

func (f *Flight) AvailableSeats() int { return f.totalSeats - len(f.booked) }

func (f *Flight) BookedCount() int { return len(f.booked) }

func (f *Flight) IsFullyBooked() bool { return f.AvailableSeats() <= 0 }

// AddTicket appends a ticket after verifying capacity. The available
// seat count observable through AvailableSeats drops by one.
func (f *Flight) AddTicket(t Ticket) error {
	if f.IsFullyBooked() {
		return fmt.Errorf("%w on flight %s", ErrCapacityExceeded, f.Number)
	}
	f.booked = append(f.booked, t)
	return nil
}

type flightJSON struct {
	ID             int64      `json:"id"`
	Number         string     `json:"number"`
	FromAirport    string     `json:"from_airport"`
	ToAirport      string     `json:"to_airport"`
	DepartureTime  time.Time  `json:"departure_time"`
	Type           FlightType `json:"type"`
	TotalSeats     int        `json:"total_seats"`
	BasePriceCents int64      `json:"base_price_cents"`
	AvailableSeats int        `json:"available_seats"`
}

func (f Flight) MarshalJSON() ([]byte, error) {
	return json.Marshal(flightJSON{
		ID:             f.ID,
		Number:         f.Number,
		FromAirport:    f.FromAirport,
		ToAirport:      f.ToAirport,
		DepartureTime:  f.DepartureTime,
		Type:           f.Type,
		TotalSeats:     f.totalSeats,
		BasePriceCents: f.basePriceCents,
		AvailableSeats: f.AvailableSeats(),
	})
}

// UnmarshalJSON rebuilds the booked list from the serialized available
// count. Per-seat ticket classes are not part of the payload, so the
// reconstructed tickets are economy placeholders; this mirrors what
// rehydration from the store does.
func (f *Flight) UnmarshalJSON(data []byte) error {
	var fj flightJSON
	if err := json.Unmarshal(data, &fj); err != nil {
		return err
	}
	f.ID = fj.ID
	f.Number = fj.Number
	f.FromAirport = fj.FromAirport
	f.ToAirport = fj.ToAirport
	f.DepartureTime = fj.DepartureTime
	f.Type = fj.Type
	if err := f.SetTotalSeats(fj.TotalSeats); err != nil {
		return err
	}
	if err := f.SetBasePrice(fj.BasePriceCents); err != nil {
		return err
	}
	booked := fj.TotalSeats - fj.AvailableSeats
	if booked < 0 {
		booked = 0
	}
	if booked > fj.TotalSeats {
		booked = fj.TotalSeats
	}
	f.booked = nil
	for i := 0; i < booked; i++ {
		f.booked = append(f.booked, NewTicket(TicketClassEconomy, f.Number, "", ""))
	}
	return nil
}
