// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
var (
	// ErrUsernameTaken indicates a registration attempt with a username
	// that already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound indicates that no user matched the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password so a caller cannot tell which of the two failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
