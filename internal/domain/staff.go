package domain

import (
	"fmt"
	"strings"
)

type StaffRole string

const (
	RolePilot      StaffRole = "Pilot"
	RoleCopilot    StaffRole = "Copilot"
	RoleStewardess StaffRole = "Stewardess"
)

const minPilotFlightHours = 1000

type Staff struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Age             int       `json:"age"`
	Role            StaffRole `json:"role"`
	FlightHours     int       `json:"flight_hours"`
	HasAdvancedCert bool      `json:"has_advanced_cert"`
	Languages       string    `json:"languages"`
}

func validatePerson(name string, age int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name cannot be empty", ErrInvalidValue)
	}
	if age < 18 {
		return "", fmt.Errorf("%w: staff must be at least 18 years old", ErrInvalidValue)
	}
	return name, nil
}

func NewPilot(name string, age, flightHours int) (*Staff, error) {
	name, err := validatePerson(name, age)
	if err != nil {
		return nil, err
	}
	if flightHours < minPilotFlightHours {
		return nil, fmt.Errorf("%w: pilot must have at least %d flight hours", ErrInvalidValue, minPilotFlightHours)
	}
	return &Staff{Name: name, Age: age, Role: RolePilot, FlightHours: flightHours}, nil
}

func NewCopilot(name string, age int, hasAdvancedCert bool) (*Staff, error) {
	name, err := validatePerson(name, age)
	if err != nil {
		return nil, err
	}
	if !hasAdvancedCert {
		return nil, fmt.Errorf("%w: copilot must have advanced certification", ErrInvalidValue)
	}
	return &Staff{Name: name, Age: age, Role: RoleCopilot, HasAdvancedCert: true}, nil
}

func NewStewardess(name string, age int, languages string) (*Staff, error) {
	name, err := validatePerson(name, age)
	if err != nil {
		return nil, err
	}
	return &Staff{Name: name, Age: age, Role: RoleStewardess, Languages: strings.TrimSpace(languages)}, nil
}
