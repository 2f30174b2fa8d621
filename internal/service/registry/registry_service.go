package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/avoicu/airdesk/internal/domain"
	"github.com/avoicu/airdesk/internal/inventory"
	"github.com/avoicu/airdesk/internal/repository"
)

// RegistryUseCase covers the back-office side of the desk: cities,
// airports, gates, staff and the flight catalogue itself.
type RegistryUseCase interface {
	AddCity(ctx context.Context, name, country string) (*domain.City, error)
	ListCities(ctx context.Context) ([]domain.City, error)
	DeleteCity(ctx context.Context, id int64) error

	AddAirport(ctx context.Context, name, code string, cityID int64) (*domain.Airport, error)
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	DeleteAirport(ctx context.Context, id int64) error

	AddGate(ctx context.Context, name string, airportID int64) (*domain.Gate, error)
	ListGates(ctx context.Context) ([]domain.Gate, error)
	DeleteGate(ctx context.Context, id int64) error

	AddStaff(ctx context.Context, input AddStaffInput) (*domain.Staff, error)
	ListStaff(ctx context.Context, role string) ([]domain.Staff, error)
	DeleteStaff(ctx context.Context, id int64) error

	AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error)
	ListFlights(ctx context.Context) ([]*domain.Flight, error)
	DeleteFlight(ctx context.Context, number string) error

	AssignCrew(ctx context.Context, flightNumber string, staffIDs []int64) error
	ListCrew(ctx context.Context, flightNumber string) ([]domain.Staff, error)
}

type AddStaffInput struct {
	Role            string `json:"role"`
	Name            string `json:"name"`
	Age             int    `json:"age"`
	FlightHours     int    `json:"flight_hours"`
	HasAdvancedCert bool   `json:"has_advanced_cert"`
	Languages       string `json:"languages"`
}

type AddFlightInput struct {
	Number         string    `json:"number"`
	FromAirport    string    `json:"from_airport"`
	ToAirport      string    `json:"to_airport"`
	DepartureTime  time.Time `json:"departure_time"`
	BasePriceCents int64     `json:"base_price_cents"`
	TotalSeats     int       `json:"total_seats"`
	Type           string    `json:"type"`
	PilotID        *int64    `json:"pilot_id,omitempty"`
	CopilotID      *int64    `json:"copilot_id,omitempty"`
}

type RegistryService struct {
	locations repository.LocationRepository
	staff     repository.StaffRepository
	flights   repository.FlightRepository
}

func NewRegistryService(
	locations repository.LocationRepository,
	staff repository.StaffRepository,
	flights repository.FlightRepository,
) *RegistryService {
	return &RegistryService{locations: locations, staff: staff, flights: flights}
}

func (s *RegistryService) AddCity(ctx context.Context, name, country string) (*domain.City, error) {
	city, err := domain.NewCity(name, country)
	if err != nil {
		return nil, err
	}
	if _, err := s.locations.CreateCity(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *RegistryService) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.locations.ListCities(ctx)
}

func (s *RegistryService) DeleteCity(ctx context.Context, id int64) error {
	return s.locations.DeleteCity(ctx, id)
}

func (s *RegistryService) AddAirport(ctx context.Context, name, code string, cityID int64) (*domain.Airport, error) {
	airport, err := domain.NewAirport(name, code, cityID)
	if err != nil {
		return nil, err
	}
	if _, err := s.locations.CreateAirport(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

func (s *RegistryService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return s.locations.ListAirports(ctx)
}

func (s *RegistryService) DeleteAirport(ctx context.Context, id int64) error {
	return s.locations.DeleteAirport(ctx, id)
}

func (s *RegistryService) AddGate(ctx context.Context, name string, airportID int64) (*domain.Gate, error) {
	gate, err := domain.NewGate(name, airportID)
	if err != nil {
		return nil, err
	}
	if _, err := s.locations.CreateGate(ctx, gate); err != nil {
		return nil, err
	}
	return gate, nil
}

func (s *RegistryService) ListGates(ctx context.Context) ([]domain.Gate, error) {
	return s.locations.ListGates(ctx)
}

func (s *RegistryService) DeleteGate(ctx context.Context, id int64) error {
	return s.locations.DeleteGate(ctx, id)
}

func (s *RegistryService) AddStaff(ctx context.Context, input AddStaffInput) (*domain.Staff, error) {
	var (
		member *domain.Staff
		err    error
	)
	switch domain.StaffRole(input.Role) {
	case domain.RolePilot:
		member, err = domain.NewPilot(input.Name, input.Age, input.FlightHours)
	case domain.RoleCopilot:
		member, err = domain.NewCopilot(input.Name, input.Age, input.HasAdvancedCert)
	case domain.RoleStewardess:
		member, err = domain.NewStewardess(input.Name, input.Age, input.Languages)
	default:
		return nil, fmt.Errorf("%w: unknown staff role %q", domain.ErrInvalidValue, input.Role)
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.staff.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *RegistryService) ListStaff(ctx context.Context, role string) ([]domain.Staff, error) {
	if role == "" {
		return s.staff.List(ctx)
	}
	switch r := domain.StaffRole(role); r {
	case domain.RolePilot, domain.RoleCopilot, domain.RoleStewardess:
		return s.staff.ListByRole(ctx, r)
	default:
		return nil, fmt.Errorf("%w: unknown staff role %q", domain.ErrInvalidValue, role)
	}
}

func (s *RegistryService) DeleteStaff(ctx context.Context, id int64) error {
	return s.staff.Delete(ctx, id)
}

// AddFlight registers a new route. Airports are deliberately not
// checked against the registry here: a flight may be filed to a
// destination that has not been onboarded yet.
func (s *RegistryService) AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error) {
	ftype, err := domain.ParseFlightType(input.Type)
	if err != nil {
		return nil, err
	}
	flight, err := domain.NewFlight(input.Number, input.FromAirport, input.ToAirport,
		input.DepartureTime, input.BasePriceCents, input.TotalSeats, ftype)
	if err != nil {
		return nil, err
	}
	if err := s.flights.Create(ctx, flight, input.PilotID, input.CopilotID); err != nil {
		return nil, err
	}
	return flight, nil
}

func (s *RegistryService) ListFlights(ctx context.Context) ([]*domain.Flight, error) {
	stored, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}
	flights := make([]*domain.Flight, 0, len(stored))
	for _, sf := range stored {
		inventory.Rehydrate(sf.Flight, sf.Available)
		flights = append(flights, sf.Flight)
	}
	return flights, nil
}

func (s *RegistryService) DeleteFlight(ctx context.Context, number string) error {
	return s.flights.Delete(ctx, number)
}

func (s *RegistryService) AssignCrew(ctx context.Context, flightNumber string, staffIDs []int64) error {
	if len(staffIDs) == 0 {
		return fmt.Errorf("%w: crew list cannot be empty", domain.ErrInvalidValue)
	}
	return s.staff.AssignCrew(ctx, flightNumber, staffIDs)
}

func (s *RegistryService) ListCrew(ctx context.Context, flightNumber string) ([]domain.Staff, error) {
	return s.staff.ListCrew(ctx, flightNumber)
}

var _ RegistryUseCase = (*RegistryService)(nil)
