// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrSessionNotFound is returned when a session cannot be found by ID,
	// or when it exists but is expired or revoked. Callers treat all three
	// as an anonymous request.
	ErrSessionNotFound = errors.New("session not found")
)
