package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gs2io/gs2-realtime-go/client/internal/api"
	"github.com/gs2io/gs2-realtime-go/client/internal/transport"
)

// DefaultEndpoint is the endpoint name of the realtime service.
const DefaultEndpoint = "realtime"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client calls the realtime gathering API. It holds no per-call state and is
// safe for concurrent use once constructed.
type Client struct {
	baseURL  string
	endpoint string
	http     *http.Client
	creds    Credentials
	debug    bool
	poll     pollConfig
	doer     api.Doer
}

// New constructs a Client for region, signing every request with creds.
// Additional options can be provided via functional arguments.
func New(region string, creds Credentials, opts ...Option) (*Client, error) {
	if creds == nil {
		return nil, fmt.Errorf("credentials cannot be nil")
	}

	c := &Client{
		endpoint: DefaultEndpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
		creds:    creds,
		poll:     defaultPollConfig(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.baseURL == "" {
		if region == "" {
			return nil, fmt.Errorf("region cannot be empty")
		}
		c.baseURL = fmt.Sprintf("https://%s.%s.gs2io.com", c.endpoint, region)
	}

	// Auto-enable debug via env variable without changing code.
	if c.debug || debugLoggingRequested() {
		c.installDebugTransport()
	}

	c.doer = transport.New(c.baseURL, c.http, c.creds)
	return c, nil
}

// BaseURL returns the root every request path is resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// installDebugTransport wraps a copy of the http.Client so a caller-supplied
// client is never mutated.
func (c *Client) installDebugTransport() {
	hc := *c.http
	hc.Transport = &debugTransport{base: hc.Transport}
	c.http = &hc
}

// --------------------------------------------------------------------
// Gathering pool operations - delegated to internal/api
// --------------------------------------------------------------------

// DescribeGatheringPool lists gathering pools. An empty pageToken starts from
// the first page; limit 0 leaves the page size to the backend.
func (c *Client) DescribeGatheringPool(ctx context.Context, pageToken string, limit int) (*Page[GatheringPool], error) {
	return api.DescribeGatheringPool(ctx, c.doer, pageToken, limit)
}

// CreateGatheringPool creates a gathering pool. A pool must exist before any
// gathering can be created in it.
func (c *Client) CreateGatheringPool(ctx context.Context, req *CreateGatheringPoolRequest) (*GatheringPool, error) {
	return api.CreateGatheringPool(ctx, c.doer, req)
}

// GetGatheringPool retrieves a gathering pool by name.
func (c *Client) GetGatheringPool(ctx context.Context, req *GetGatheringPoolRequest) (*GatheringPool, error) {
	return api.GetGatheringPool(ctx, c.doer, req)
}

// UpdateGatheringPool updates the description of a gathering pool.
func (c *Client) UpdateGatheringPool(ctx context.Context, req *UpdateGatheringPoolRequest) (*GatheringPool, error) {
	return api.UpdateGatheringPool(ctx, c.doer, req)
}

// DeleteGatheringPool deletes a gathering pool.
func (c *Client) DeleteGatheringPool(ctx context.Context, req *DeleteGatheringPoolRequest) error {
	return api.DeleteGatheringPool(ctx, c.doer, req)
}

// --------------------------------------------------------------------
// Gathering operations - delegated to internal/api
// --------------------------------------------------------------------

// DescribeGathering lists the gatherings of a pool.
func (c *Client) DescribeGathering(ctx context.Context, req *DescribeGatheringRequest, pageToken string, limit int) (*Page[Gathering], error) {
	return api.DescribeGathering(ctx, c.doer, req, pageToken, limit)
}

// CreateGathering creates a gathering and boots its game server. Players
// connect to the server over WebSocket using the returned address and secret.
// Setting UserIDs restricts the gathering to those users; leaving it empty
// lets anyone who knows the secret join.
func (c *Client) CreateGathering(ctx context.Context, req *CreateGatheringRequest) (*Gathering, error) {
	return api.CreateGathering(ctx, c.doer, req)
}

// GetGathering retrieves a gathering.
func (c *Client) GetGathering(ctx context.Context, req *GetGatheringRequest) (*Gathering, error) {
	return api.GetGathering(ctx, c.doer, req)
}

// DeleteGathering deletes a gathering.
func (c *Client) DeleteGathering(ctx context.Context, req *DeleteGatheringRequest) error {
	return api.DeleteGathering(ctx, c.doer, req)
}
