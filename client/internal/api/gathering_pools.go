package api

import (
	"context"
	"net/http"

	"github.com/gs2io/gs2-realtime-go/client/internal/transport"
	"github.com/gs2io/gs2-realtime-go/client/internal/types"
)

// DescribeGatheringPool lists gathering pools, one page at a time.
func DescribeGatheringPool(ctx context.Context, doer Doer, pageToken string, limit int) (*types.GatheringPoolPage, error) {
	const op = "DescribeGatheringPool"
	body, err := doer.Do(ctx, transport.Request{
		Method:    http.MethodGet,
		Service:   Service,
		Operation: op,
		Path:      "/gatheringPool",
		Query:     pageQuery(pageToken, limit),
	})
	if err != nil {
		return nil, err
	}
	var page types.GatheringPoolPage
	if err := decode(op, body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateGatheringPool creates a pool. A pool must exist before any gathering
// can be created in it.
func CreateGatheringPool(ctx context.Context, doer Doer, req *types.CreateGatheringPoolRequest) (*types.GatheringPool, error) {
	const op = "CreateGatheringPool"
	if err := types.ValidateRequest(op, req); err != nil {
		return nil, err
	}
	body, err := doer.Do(ctx, transport.Request{
		Method:    http.MethodPost,
		Service:   Service,
		Operation: op,
		Path:      "/gatheringPool",
		Body: &types.CreateGatheringPoolBody{
			Name:        req.Name,
			Description: req.Description,
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeItem[types.GatheringPool](op, body)
}

// GetGatheringPool retrieves a pool by name.
func GetGatheringPool(ctx context.Context, doer Doer, req *types.GetGatheringPoolRequest) (*types.GatheringPool, error) {
	const op = "GetGatheringPool"
	if err := types.ValidateRequest(op, req); err != nil {
		return nil, err
	}
	body, err := doer.Do(ctx, transport.Request{
		Method:    http.MethodGet,
		Service:   Service,
		Operation: op,
		Path:      poolPath(req.GatheringPoolName),
	})
	if err != nil {
		return nil, err
	}
	return decodeItem[types.GatheringPool](op, body)
}

// UpdateGatheringPool changes a pool's description.
func UpdateGatheringPool(ctx context.Context, doer Doer, req *types.UpdateGatheringPoolRequest) (*types.GatheringPool, error) {
	const op = "UpdateGatheringPool"
	if err := types.ValidateRequest(op, req); err != nil {
		return nil, err
	}
	body, err := doer.Do(ctx, transport.Request{
		Method:    http.MethodPut,
		Service:   Service,
		Operation: op,
		Path:      poolPath(req.GatheringPoolName),
		Body:      &types.UpdateGatheringPoolBody{Description: req.Description},
	})
	if err != nil {
		return nil, err
	}
	return decodeItem[types.GatheringPool](op, body)
}

// DeleteGatheringPool removes a pool.
func DeleteGatheringPool(ctx context.Context, doer Doer, req *types.DeleteGatheringPoolRequest) error {
	const op = "DeleteGatheringPool"
	if err := types.ValidateRequest(op, req); err != nil {
		return err
	}
	_, err := doer.Do(ctx, transport.Request{
		Method:    http.MethodDelete,
		Service:   Service,
		Operation: op,
		Path:      poolPath(req.GatheringPoolName),
	})
	return err
}
