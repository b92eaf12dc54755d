package utils

import (
	"fmt"
	"net/http"
)

// APIError carries the HTTP status and message that reach the client. The
// four error classes of this API (validation, not found, state conflict,
// invalid status) all surface through this one shape.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewStateConflictError rejects a full edit of a reservation that has moved
// past "booked". The original API reports this as a plain 400.
func NewStateConflictError(currentStatus string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf("Reservation status: '%s'.", currentStatus)}
}

func NewInvalidStatusError(status string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf("Invalid status: %q", status)}
}
