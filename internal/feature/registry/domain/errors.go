// Package domain defines domain-level errors for the registry feature.
package domain

import "errors"

// ErrProfessionalNotFound indicates that no record matched the given id.
var ErrProfessionalNotFound = errors.New("professional not found")
