// Package transport performs signed JSON requests against the realtime
// endpoint and turns every failure into a ServiceError.
package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	errs "github.com/gs2io/gs2-realtime-go/client/internal/errors"
)

// RequestIDHeader carries a per-call id for correlating client and backend logs.
const RequestIDHeader = "X-Request-Id"

// Signer produces the authentication headers for one call.
type Signer interface {
	Sign(ctx context.Context, service, operation string) (http.Header, error)
}

// Request describes one call. Service and Operation are fed into the
// signature; Body, when non-nil, is sent as JSON.
type Request struct {
	Method    string
	Service   string
	Operation string
	Path      string
	Query     Query
	Body      any
}

// URL returns the path plus the encoded query, if any.
func (r Request) URL() string {
	if q := r.Query.Encode(); q != "" {
		return r.Path + "?" + q
	}
	return r.Path
}

// Doer executes a Request and returns the raw 2xx response body.
// Implementations must be safe for concurrent use.
type Doer interface {
	Do(ctx context.Context, req Request) ([]byte, error)
}

// Transport is the resty-backed Doer.
type Transport struct {
	rc     *resty.Client
	signer Signer
}

// New returns a Transport rooted at baseURL. httpClient supplies timeout and
// RoundTripper chain; signer may be nil for unauthenticated test backends.
func New(baseURL string, httpClient *http.Client, signer Signer) *Transport {
	rc := resty.NewWithClient(httpClient).
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Transport{rc: rc, signer: signer}
}

// Do implements Doer.
func (t *Transport) Do(ctx context.Context, req Request) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewNetworkError(req.Operation, err)
	}

	requestID := uuid.NewString()
	r := t.rc.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)

	if t.signer != nil {
		h, err := t.signer.Sign(ctx, req.Service, req.Operation)
		if err != nil {
			return nil, &errs.ServiceError{
				Operation:  req.Operation,
				Category:   errs.Irrecoverable,
				Underlying: fmt.Errorf("sign request: %w", err),
			}
		}
		r.SetHeaderMultiValues(h)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, req.URL())
	elapsed := time.Since(start)
	requestDuration.WithLabelValues(req.Operation).Observe(elapsed.Seconds())

	if err != nil {
		requestsTotal.WithLabelValues(req.Operation, statusClass(0)).Inc()
		log.Debug().
			Err(err).
			Str("operation", req.Operation).
			Str("method", req.Method).
			Str("path", req.Path).
			Str("request_id", requestID).
			Dur("elapsed", elapsed).
			Msg("realtime request failed")
		return nil, errs.NewNetworkError(req.Operation, err)
	}

	requestsTotal.WithLabelValues(req.Operation, statusClass(resp.StatusCode())).Inc()
	log.Debug().
		Str("operation", req.Operation).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status_code", resp.StatusCode()).
		Str("request_id", requestID).
		Dur("elapsed", elapsed).
		Msg("realtime request completed")

	if !resp.IsSuccess() {
		return nil, errs.NewHTTPError(req.Operation, resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}
