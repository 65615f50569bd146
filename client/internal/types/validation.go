package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrMissingArgument is matched by every ArgumentError.
var ErrMissingArgument = errors.New("missing required argument")

// ArgumentError reports a request rejected locally, before any network call.
// It names the operation whose contract was violated.
type ArgumentError struct {
	Operation string
	Err       error // validator detail, may be nil
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, ErrMissingArgument)
}

// Unwrap exposes ErrMissingArgument and, when present, the validator error.
func (e *ArgumentError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMissingArgument}
	}
	return []error{ErrMissingArgument, e.Err}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest rejects a nil request or one whose required fields are
// empty. Fields are checked in declaration order.
func ValidateRequest[T any](operation string, req *T) error {
	if req == nil {
		return &ArgumentError{Operation: operation}
	}
	if err := validate.Struct(req); err != nil {
		return &ArgumentError{Operation: operation, Err: err}
	}
	return nil
}
