package domain

import "errors"

// Sentinel errors shared across the domain, repositories and services.
// Callers match them with errors.Is; repositories wrap storage failures
// so that "not found" is always distinguishable from "store is down".
var (
	ErrInvalidValue       = errors.New("invalid value")
	ErrCapacityExceeded   = errors.New("no seats available")
	ErrReferenceNotFound  = errors.New("referenced record not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
