// Package errors defines the error returned for every failure that happens
// after a request leaves the client.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory tells callers whether repeating the same call could succeed.
type ErrorCategory int

const (
	// Recoverable errors may succeed when repeated.
	// Examples: 500 Internal Server Error, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors will fail again without a change to the request.
	// Examples: 401 Unauthorized, 404 Not Found, 400 Bad Request.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ServiceError is a failure reported by the transport or the backend.
type ServiceError struct {
	Operation  string
	Category   ErrorCategory
	StatusCode int    // HTTP status code (0 for network errors)
	Message    string // backend message decoded from the error envelope
	Body       string // raw response body
	Underlying error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Message != "":
		return fmt.Sprintf("%s: [%s] HTTP %d: %s", e.Operation, e.Category, e.StatusCode, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: [%s] HTTP %d", e.Operation, e.Category, e.StatusCode)
	default:
		return fmt.Sprintf("%s: [%s] %v", e.Operation, e.Category, e.Underlying)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ServiceError) Unwrap() error {
	return e.Underlying
}

// AsServiceError extracts a *ServiceError from err's chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsIrrecoverable returns true if repeating the call cannot help.
func IsIrrecoverable(err error) bool {
	if se, ok := AsServiceError(err); ok {
		return se.Category == Irrecoverable
	}
	return false
}
