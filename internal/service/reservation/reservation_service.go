package reservation

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/avoicu/airdesk/internal/domain"
	"github.com/avoicu/airdesk/internal/inventory"
	"github.com/avoicu/airdesk/internal/kafka"
	"github.com/avoicu/airdesk/internal/pricing"
	"github.com/avoicu/airdesk/internal/repository"
)

type ReservationUseCase interface {
	SearchFlights(ctx context.Context, from, to string) ([]*domain.Flight, error)
	Book(ctx context.Context, input BookingInput) (*BookingConfirmation, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListPassengers(ctx context.Context) ([]domain.Passenger, error)
	DeletePassenger(ctx context.Context, id int64) error
	AuditSeats(ctx context.Context) ([]SeatCorrection, error)
}

type Cache interface {
	GetRoute(ctx context.Context, from, to string) ([]domain.Flight, error)
	SetRoute(ctx context.Context, from, to string, flights []domain.Flight) error
	InvalidateRoute(ctx context.Context, from, to string) error
	AcquireFlightLock(ctx context.Context, flightNumber string, ttl time.Duration) (bool, error)
	ReleaseFlightLock(ctx context.Context, flightNumber string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingInput struct {
	FlightNumber   string `json:"flight_number"`
	FullName       string `json:"full_name"`
	PassportNumber string `json:"passport_number"`
	Class          string `json:"class"`
}

type BookingConfirmation struct {
	Booking        domain.Booking `json:"booking"`
	Ticket         domain.Ticket  `json:"ticket"`
	AvailableSeats int            `json:"available_seats"`
}

// SeatCorrection records one flight whose stored available-seat count
// drifted from the booking ledger and has been repaired.
type SeatCorrection struct {
	FlightNumber string `json:"flight_number"`
	Stored       int    `json:"stored"`
	Actual       int    `json:"actual"`
}

type ReservationService struct {
	flights            repository.FlightRepository
	bookings           repository.BookingRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	holdTTL            time.Duration
}

type ReservationServiceOption func(*ReservationService)

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

func NewReservationService(
	flights repository.FlightRepository,
	bookings repository.BookingRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	holdTTL time.Duration,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		flights:      flights,
		bookings:     bookings,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
		holdTTL:      holdTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *ReservationService) SearchFlights(ctx context.Context, from, to string) ([]*domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetRoute(ctx, from, to); err == nil && cached != nil {
			flights := make([]*domain.Flight, 0, len(cached))
			for i := range cached {
				flights = append(flights, &cached[i])
			}
			return flights, nil
		}
	}

	stored, err := s.flights.ListByRoute(ctx, from, to)
	if err != nil {
		return nil, err
	}
	flights := make([]*domain.Flight, 0, len(stored))
	for _, sf := range stored {
		inventory.Rehydrate(sf.Flight, sf.Available)
		flights = append(flights, sf.Flight)
	}

	if s.cache != nil {
		snapshot := make([]domain.Flight, 0, len(flights))
		for _, f := range flights {
			snapshot = append(snapshot, *f)
		}
		_ = s.cache.SetRoute(ctx, from, to, snapshot)
	}
	return flights, nil
}

// Book sells one seat. The flight is locked for the hold window, the
// capacity check happens before any write, and the stored seat count is
// decremented with a conditional update so two racing bookers can never
// both take the last seat.
func (s *ReservationService) Book(ctx context.Context, input BookingInput) (*BookingConfirmation, error) {
	class, err := domain.ParseTicketClass(input.Class)
	if err != nil {
		return nil, err
	}
	passenger, err := domain.NewPassenger(input.FullName, input.PassportNumber)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		ok, err := s.cache.AcquireFlightLock(ctx, input.FlightNumber, s.holdTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: flight %s is being booked by another request", domain.ErrAlreadyExists, input.FlightNumber)
		}
		defer func() {
			_ = s.cache.ReleaseFlightLock(ctx, input.FlightNumber)
		}()
	}

	stored, err := s.flights.GetByNumber(ctx, input.FlightNumber)
	if err != nil {
		return nil, err
	}
	flight := stored.Flight
	inventory.Rehydrate(flight, stored.Available)
	if flight.IsFullyBooked() {
		return nil, fmt.Errorf("%w: flight %s is fully booked", domain.ErrCapacityExceeded, flight.Number)
	}

	price, err := pricing.FinalPrice(flight.BasePriceCents(), class)
	if err != nil {
		return nil, err
	}

	seatNumber := inventory.NextSeatNumber(flight)
	ticket := domain.NewTicket(class, flight.Number, passenger.FullName, seatNumber)
	if _, err := inventory.Reserve(flight, ticket); err != nil {
		return nil, err
	}

	if _, err := s.bookings.CreatePassenger(ctx, passenger); err != nil {
		return nil, err
	}

	available, err := s.flights.ReserveSeat(ctx, flight.Number)
	if err != nil {
		// The flight filled up between the rehydrate and the
		// decrement; remove the passenger row so it is not orphaned.
		_ = s.bookings.DeletePassenger(ctx, passenger.ID)
		return nil, err
	}

	booking := &domain.Booking{
		FlightNumber: flight.Number,
		PassengerID:  passenger.ID,
		SeatNumber:   seatNumber,
		Class:        class,
		PriceCents:   price,
	}
	if err := s.bookings.Record(ctx, booking); err != nil {
		// The seat decrement already landed; hand it back so the
		// catalogue does not leak capacity.
		_ = s.flights.ReleaseSeat(ctx, flight.Number)
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateRoute(ctx, flight.FromAirport, flight.ToAirport)
	}

	if err := s.publish(ctx, "booking_confirmed", booking, ticket); err != nil {
		log.Printf("WARNING: failed to publish booking_confirmed for ticket %s: %v", ticket.ID, err)
	}

	return &BookingConfirmation{
		Booking:        *booking,
		Ticket:         ticket,
		AvailableSeats: available,
	}, nil
}

func (s *ReservationService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *ReservationService) ListPassengers(ctx context.Context) ([]domain.Passenger, error) {
	return s.bookings.ListPassengers(ctx)
}

func (s *ReservationService) DeletePassenger(ctx context.Context, id int64) error {
	return s.bookings.DeletePassenger(ctx, id)
}

// AuditSeats reconciles every flight's stored available-seat count
// against the booking ledger and repairs any drift.
func (s *ReservationService) AuditSeats(ctx context.Context) ([]SeatCorrection, error) {
	stored, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}

	corrections := make([]SeatCorrection, 0)
	for _, sf := range stored {
		booked, err := s.bookings.CountByFlight(ctx, sf.Flight.Number)
		if err != nil {
			return corrections, err
		}
		actual := sf.Flight.TotalSeats() - booked
		if actual < 0 {
			actual = 0
		}
		if actual == sf.Available {
			continue
		}
		if err := s.flights.UpdateAvailableSeats(ctx, sf.Flight.Number, actual); err != nil {
			return corrections, err
		}
		log.Printf("repaired seat count for flight %s: stored %d, actual %d", sf.Flight.Number, sf.Available, actual)
		corrections = append(corrections, SeatCorrection{
			FlightNumber: sf.Flight.Number,
			Stored:       sf.Available,
			Actual:       actual,
		})
	}
	return corrections, nil
}

func (s *ReservationService) publish(ctx context.Context, eventType string, booking *domain.Booking, ticket domain.Ticket) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:         eventType,
		BookingRef:   ticket.ID,
		FlightNumber: booking.FlightNumber,
		Passenger:    ticket.Passenger,
		SeatNumber:   booking.SeatNumber,
		TicketClass:  string(booking.Class),
		PriceCents:   booking.PriceCents,
		BookedAt:     booking.BookedAt,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, ticket.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, ticket.ID, event)
	}
	return nil
}

var _ ReservationUseCase = (*ReservationService)(nil)
