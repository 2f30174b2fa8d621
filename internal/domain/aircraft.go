package domain

import (
	"fmt"
	"strings"
)

type AircraftKind int

const (
	AircraftCommercial AircraftKind = iota
	AircraftCargo
	AircraftMilitary
)

// Aircraft is a classification-only value object; flights carry just
// the FlightType tag, never a persisted aircraft reference.
type Aircraft struct {
	Kind         AircraftKind
	Model        string
	Manufacturer string
	MaxRangeKm   int

	PassengerCapacity int
	MaxCargoKg        int
	Armed             bool
}

func newAircraft(kind AircraftKind, model, manufacturer string, maxRangeKm int) (*Aircraft, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, fmt.Errorf("%w: aircraft model cannot be empty", ErrInvalidValue)
	}
	return &Aircraft{Kind: kind, Model: model, Manufacturer: manufacturer, MaxRangeKm: maxRangeKm}, nil
}

func NewCommercialAircraft(model, manufacturer string, maxRangeKm, passengerCapacity int) (*Aircraft, error) {
	a, err := newAircraft(AircraftCommercial, model, manufacturer, maxRangeKm)
	if err != nil {
		return nil, err
	}
	if passengerCapacity <= 0 {
		return nil, fmt.Errorf("%w: passenger capacity must be greater than 0", ErrInvalidValue)
	}
	a.PassengerCapacity = passengerCapacity
	return a, nil
}

func NewCargoAircraft(model, manufacturer string, maxRangeKm, maxCargoKg int) (*Aircraft, error) {
	a, err := newAircraft(AircraftCargo, model, manufacturer, maxRangeKm)
	if err != nil {
		return nil, err
	}
	if maxCargoKg <= 0 {
		return nil, fmt.Errorf("%w: cargo capacity must be greater than 0", ErrInvalidValue)
	}
	a.MaxCargoKg = maxCargoKg
	return a, nil
}

func NewMilitaryAircraft(model, manufacturer string, maxRangeKm int, armed bool) (*Aircraft, error) {
	a, err := newAircraft(AircraftMilitary, model, manufacturer, maxRangeKm)
	if err != nil {
		return nil, err
	}
	a.Armed = armed
	return a, nil
}

func (a *Aircraft) CanCarryPassengers() bool {
	switch a.Kind {
	case AircraftCommercial:
		return true
	case AircraftCargo, AircraftMilitary:
		return false
	default:
		return false
	}
}
