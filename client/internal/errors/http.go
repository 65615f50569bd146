package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// envelope is the JSON error body returned by the backend. Older endpoints
// send "message"; some gateways send "error" instead.
type envelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewHTTPError builds a ServiceError from a non-2xx response.
func NewHTTPError(operation string, statusCode int, body []byte) *ServiceError {
	return &ServiceError{
		Operation:  operation,
		Category:   categoryFor(statusCode),
		StatusCode: statusCode,
		Message:    decodeMessage(body),
		Body:       string(body),
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, statusCode),
	}
}

// NewNetworkError wraps a failure that happened before a response arrived.
func NewNetworkError(operation string, err error) *ServiceError {
	return &ServiceError{
		Operation:  operation,
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}

// NewDecodeError wraps a 2xx response whose body is not the expected JSON.
func NewDecodeError(operation string, body []byte, err error) *ServiceError {
	return &ServiceError{
		Operation:  operation,
		Category:   Irrecoverable,
		Body:       string(body),
		Underlying: fmt.Errorf("%s decode response: %w", operation, err),
	}
}

// categoryFor maps HTTP status codes to error categories.
func categoryFor(statusCode int) ErrorCategory {
	switch {
	case statusCode == http.StatusRequestTimeout, statusCode == http.StatusTooManyRequests:
		return Recoverable
	case statusCode >= 400 && statusCode < 500:
		return Irrecoverable
	default:
		return Recoverable
	}
}

func decodeMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	return env.Error
}
