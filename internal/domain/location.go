package domain

import (
	"fmt"
	"strings"
)

type City struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

func NewCity(name, country string) (*City, error) {
	name = strings.TrimSpace(name)
	country = strings.TrimSpace(country)
	if name == "" {
		return nil, fmt.Errorf("%w: city name cannot be empty", ErrInvalidValue)
	}
	if country == "" {
		return nil, fmt.Errorf("%w: country cannot be empty", ErrInvalidValue)
	}
	return &City{Name: name, Country: country}, nil
}

type Airport struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	CityID int64  `json:"city_id"`
}

// NewAirport normalizes the IATA code to uppercase and rejects anything
// that is not exactly three characters, before any persistence call.
func NewAirport(name, code string, cityID int64) (*Airport, error) {
	name = strings.TrimSpace(name)
	code = strings.ToUpper(strings.TrimSpace(code))
	if name == "" {
		return nil, fmt.Errorf("%w: airport name cannot be empty", ErrInvalidValue)
	}
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: airport code must be exactly 3 characters", ErrInvalidValue)
	}
	return &Airport{Name: name, Code: code, CityID: cityID}, nil
}

type Gate struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	AirportID int64  `json:"airport_id"`
}

func NewGate(name string, airportID int64) (*Gate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: gate name cannot be empty", ErrInvalidValue)
	}
	return &Gate{Name: name, AirportID: airportID}, nil
}
