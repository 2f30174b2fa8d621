package registry

import (
	"context"
	"testing"
	"time"

	"github.com/avoicu/airdesk/internal/domain"
	"github.com/avoicu/airdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) CreateCity(ctx context.Context, city *domain.City) (int64, error) {
	args := m.Called(ctx, city)
	city.ID = args.Get(0).(int64)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLocationRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *MockLocationRepository) GetCityByName(ctx context.Context, name string) (*domain.City, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockLocationRepository) DeleteCity(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocationRepository) CreateAirport(ctx context.Context, airport *domain.Airport) (int64, error) {
	args := m.Called(ctx, airport)
	airport.ID = args.Get(0).(int64)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLocationRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockLocationRepository) GetAirportByCode(ctx context.Context, code string) (*domain.Airport, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockLocationRepository) DeleteAirport(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocationRepository) CreateGate(ctx context.Context, gate *domain.Gate) (int64, error) {
	args := m.Called(ctx, gate)
	gate.ID = args.Get(0).(int64)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLocationRepository) ListGates(ctx context.Context) ([]domain.Gate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Gate), args.Error(1)
}

func (m *MockLocationRepository) DeleteGate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(ctx context.Context, staff *domain.Staff) (int64, error) {
	args := m.Called(ctx, staff)
	staff.ID = args.Get(0).(int64)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStaffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) ListByRole(ctx context.Context, role domain.StaffRole) ([]domain.Staff, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStaffRepository) AssignCrew(ctx context.Context, flightNumber string, staffIDs []int64) error {
	args := m.Called(ctx, flightNumber, staffIDs)
	return args.Error(0)
}

func (m *MockStaffRepository) ListCrew(ctx context.Context, flightNumber string) ([]domain.Staff, error) {
	args := m.Called(ctx, flightNumber)
	return args.Get(0).([]domain.Staff), args.Error(1)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight, pilotID, copilotID *int64) error {
	args := m.Called(ctx, flight, pilotID, copilotID)
	return args.Error(0)
}

func (m *MockFlightRepository) List(ctx context.Context) ([]repository.StoredFlight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.StoredFlight), args.Error(1)
}

func (m *MockFlightRepository) GetByNumber(ctx context.Context, number string) (*repository.StoredFlight, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StoredFlight), args.Error(1)
}

func (m *MockFlightRepository) ListByRoute(ctx context.Context, from, to string) ([]repository.StoredFlight, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]repository.StoredFlight), args.Error(1)
}

func (m *MockFlightRepository) UpdateAvailableSeats(ctx context.Context, number string, available int) error {
	args := m.Called(ctx, number, available)
	return args.Error(0)
}

func (m *MockFlightRepository) ReserveSeat(ctx context.Context, number string) (int, error) {
	args := m.Called(ctx, number)
	return args.Int(0), args.Error(1)
}

func (m *MockFlightRepository) ReleaseSeat(ctx context.Context, number string) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, number string) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func TestRegistryService_AddCity_Success(t *testing.T) {
	mockLocations := &MockLocationRepository{}
	service := NewRegistryService(mockLocations, nil, nil)
	ctx := context.Background()

	mockLocations.On("CreateCity", ctx, mock.AnythingOfType("*domain.City")).Return(int64(1), nil).Once()

	city, err := service.AddCity(ctx, "Bucharest", "Romania")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), city.ID)
	assert.Equal(t, "Bucharest", city.Name)

	mockLocations.AssertExpectations(t)
}

func TestRegistryService_AddCity_EmptyName(t *testing.T) {
	mockLocations := &MockLocationRepository{}
	service := NewRegistryService(mockLocations, nil, nil)

	city, err := service.AddCity(context.Background(), "  ", "Romania")

	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	assert.Nil(t, city)
	mockLocations.AssertNotCalled(t, "CreateCity")
}

func TestRegistryService_AddAirport_CodeNormalized(t *testing.T) {
	mockLocations := &MockLocationRepository{}
	service := NewRegistryService(mockLocations, nil, nil)
	ctx := context.Background()

	mockLocations.On("CreateAirport", ctx, mock.AnythingOfType("*domain.Airport")).Return(int64(3), nil).Once()

	airport, err := service.AddAirport(ctx, "Henri Coanda", "otp", 1)

	assert.NoError(t, err)
	assert.Equal(t, "OTP", airport.Code)

	mockLocations.AssertExpectations(t)
}

func TestRegistryService_AddAirport_BadCode(t *testing.T) {
	mockLocations := &MockLocationRepository{}
	service := NewRegistryService(mockLocations, nil, nil)

	airport, err := service.AddAirport(context.Background(), "Henri Coanda", "OT", 1)

	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	assert.Nil(t, airport)
	mockLocations.AssertNotCalled(t, "CreateAirport")
}

func TestRegistryService_AddStaff_Roles(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		input   AddStaffInput
		wantErr bool
	}{
		{
			name:  "Pilot with enough hours",
			input: AddStaffInput{Role: "Pilot", Name: "Dan Petrescu", Age: 45, FlightHours: 4200},
		},
		{
			name:    "Pilot short on hours",
			input:   AddStaffInput{Role: "Pilot", Name: "Dan Petrescu", Age: 45, FlightHours: 300},
			wantErr: true,
		},
		{
			name:    "Copilot without certification",
			input:   AddStaffInput{Role: "Copilot", Name: "Elena Radu", Age: 30, HasAdvancedCert: false},
			wantErr: true,
		},
		{
			name:  "Stewardess",
			input: AddStaffInput{Role: "Stewardess", Name: "Ioana Marin", Age: 26, Languages: "Romanian, English"},
		},
		{
			name:    "Unknown role",
			input:   AddStaffInput{Role: "Navigator", Name: "Dan Petrescu", Age: 45},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockStaff := &MockStaffRepository{}
			service := NewRegistryService(nil, mockStaff, nil)

			if !tc.wantErr {
				mockStaff.On("Create", ctx, mock.AnythingOfType("*domain.Staff")).Return(int64(1), nil).Once()
			}

			member, err := service.AddStaff(ctx, tc.input)

			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidValue)
				assert.Nil(t, member)
				mockStaff.AssertNotCalled(t, "Create")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, member)
				mockStaff.AssertExpectations(t)
			}
		})
	}
}

func TestRegistryService_AddFlight_Success(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewRegistryService(nil, nil, mockFlights)
	ctx := context.Background()

	mockFlights.On("Create", ctx, mock.AnythingOfType("*domain.Flight"), (*int64)(nil), (*int64)(nil)).Return(nil).Once()

	flight, err := service.AddFlight(ctx, AddFlightInput{
		Number:         "RO101",
		FromAirport:    "otp",
		ToAirport:      "lhr",
		DepartureTime:  time.Now().Add(48 * time.Hour),
		BasePriceCents: 15000,
		TotalSeats:     180,
		Type:           "Commercial",
	})

	assert.NoError(t, err)
	assert.Equal(t, "OTP", flight.FromAirport)
	assert.Equal(t, "LHR", flight.ToAirport)
	assert.Equal(t, 180, flight.AvailableSeats())

	mockFlights.AssertExpectations(t)
}

func TestRegistryService_AddFlight_NegativeSeats(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewRegistryService(nil, nil, mockFlights)

	flight, err := service.AddFlight(context.Background(), AddFlightInput{
		Number:         "RO101",
		FromAirport:    "OTP",
		ToAirport:      "LHR",
		BasePriceCents: 15000,
		TotalSeats:     -10,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	assert.Nil(t, flight)
	mockFlights.AssertNotCalled(t, "Create")
}

func TestRegistryService_ListFlights_Rehydrates(t *testing.T) {
	mockFlights := &MockFlightRepository{}
	service := NewRegistryService(nil, nil, mockFlights)
	ctx := context.Background()

	flight, err := domain.NewFlight("RO101", "OTP", "LHR", time.Now(), 15000, 180, domain.FlightTypeCommercial)
	assert.NoError(t, err)

	mockFlights.On("List", ctx).Return([]repository.StoredFlight{{Flight: flight, Available: 160}}, nil).Once()

	flights, err := service.ListFlights(ctx)

	assert.NoError(t, err)
	assert.Len(t, flights, 1)
	assert.Equal(t, 160, flights[0].AvailableSeats())
	assert.Equal(t, 20, flights[0].BookedCount())

	mockFlights.AssertExpectations(t)
}

func TestRegistryService_AssignCrew_EmptyList(t *testing.T) {
	mockStaff := &MockStaffRepository{}
	service := NewRegistryService(nil, mockStaff, nil)

	err := service.AssignCrew(context.Background(), "RO101", nil)

	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	mockStaff.AssertNotCalled(t, "AssignCrew")
}
