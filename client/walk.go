package client

import (
	"context"
	"errors"
	"fmt"
)

// ErrStopWalk may be returned by a walk callback to end the walk early
// without an error.
var ErrStopWalk = errors.New("stop walk")

// WalkGatheringPools calls fn for every gathering pool, following
// nextPageToken until the listing is exhausted. limit is the page size
// (0 lets the backend choose).
func (c *Client) WalkGatheringPools(ctx context.Context, limit int, fn func(GatheringPool) error) error {
	return walk(func(token string) (*Page[GatheringPool], error) {
		return c.DescribeGatheringPool(ctx, token, limit)
	}, fn)
}

// WalkGatherings calls fn for every gathering in the pool named by req.
func (c *Client) WalkGatherings(ctx context.Context, req *DescribeGatheringRequest, limit int, fn func(Gathering) error) error {
	return walk(func(token string) (*Page[Gathering], error) {
		return c.DescribeGathering(ctx, req, token, limit)
	}, fn)
}

func walk[T any](fetch func(token string) (*Page[T], error), fn func(T) error) error {
	token := ""
	for {
		page, err := fetch(token)
		if err != nil {
			return err
		}
		for _, item := range page.Items {
			if err := fn(item); err != nil {
				if errors.Is(err, ErrStopWalk) {
					return nil
				}
				return err
			}
		}
		if !page.HasNext() {
			return nil
		}
		if page.NextPageToken == token {
			return fmt.Errorf("pagination did not advance past token %q", token)
		}
		token = page.NextPageToken
	}
}
