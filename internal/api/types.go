// Package api defines the shared response envelopes for the HTTP layer.
package api

// ErrorResponse is the generic error envelope. The message is always safe
// to show to a client; internals never end up here.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the envelope for successful operations with no body
// worth returning.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries a human-readable summary plus a
// field-level detail map so forms can mark the offending inputs.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}
