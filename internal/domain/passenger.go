package domain

import (
	"fmt"
	"strings"
)

type Passenger struct {
	ID             int64  `json:"id"`
	FullName       string `json:"full_name"`
	PassportNumber string `json:"passport_number,omitempty"`
}

func NewPassenger(fullName, passportNumber string) (*Passenger, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: passenger name cannot be empty", ErrInvalidValue)
	}
	return &Passenger{FullName: fullName, PassportNumber: strings.TrimSpace(passportNumber)}, nil
}
