package client

import (
	"errors"
	"net/http"

	errs "github.com/gs2io/gs2-realtime-go/client/internal/errors"
	"github.com/gs2io/gs2-realtime-go/client/internal/types"
)

// ErrMissingArgument is matched by every ArgumentError: a nil request or an
// empty required field, rejected before any network access.
var ErrMissingArgument = types.ErrMissingArgument

type (
	// ArgumentError reports a malformed request. No request was sent.
	ArgumentError = types.ArgumentError

	// ServiceError reports a network failure, a non-2xx status or an
	// undecodable response. It is returned exactly as the transport built it.
	ServiceError = errs.ServiceError

	// ErrorCategory tells whether repeating a failed call could succeed.
	ErrorCategory = errs.ErrorCategory
)

const (
	Recoverable   = errs.Recoverable
	Irrecoverable = errs.Irrecoverable
)

// IsArgumentError reports whether err was raised locally for a malformed request.
func IsArgumentError(err error) bool { return errors.Is(err, ErrMissingArgument) }

// AsServiceError extracts the ServiceError from err's chain.
func AsServiceError(err error) (*ServiceError, bool) { return errs.AsServiceError(err) }

// IsNotFound reports whether the backend answered 404.
func IsNotFound(err error) bool {
	se, ok := errs.AsServiceError(err)
	return ok && se.StatusCode == http.StatusNotFound
}
