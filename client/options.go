package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options only record settings; New assembles the transport once all of them
// have been applied, so their order does not matter.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request
// (including connection, TLS handshake, redirects, and reading the response).
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
		return nil
	}
}

// WithHTTPClient replaces the http.Client requests are sent with. The client
// is copied, never mutated.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithDebugLogging logs every request/response dump when enabled is true.
//
// Do not enable this option in production environments: dumps include the
// signature headers and the gathering secret returned by the backend.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}

// WithEndpoint overrides the endpoint name used to build the base URL.
func WithEndpoint(name string) Option {
	return func(c *Client) error {
		if name == "" {
			return fmt.Errorf("endpoint cannot be empty")
		}
		c.endpoint = name
		return nil
	}
}

// WithBaseURL sends requests to baseURL instead of the regional endpoint.
// Useful for local fakes and proxies.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		u, err := url.Parse(baseURL)
		if err != nil {
			return fmt.Errorf("invalid base URL: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base URL must be absolute: %q", baseURL)
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithReadyPolling sets the first and the largest delay between polls in
// WaitGatheringReady.
func WithReadyPolling(initial, max time.Duration) Option {
	return func(c *Client) error {
		if initial <= 0 || max < initial {
			return fmt.Errorf("ready polling needs 0 < initial <= max, got %s/%s", initial, max)
		}
		c.poll = pollConfig{initial: initial, max: max}
		return nil
	}
}
