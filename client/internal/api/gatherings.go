package api

import (
	"context"
	"net/http"

	"github.com/gs2io/gs2-realtime-go/client/internal/transport"
	"github.com/gs2io/gs2-realtime-go/client/internal/types"
)

// DescribeGathering lists the gatherings of a pool, one page at a time.
func DescribeGathering(ctx context.Context, doer Doer, req *types.DescribeGatheringRequest, pageToken string, limit int) (*types.GatheringPage, error) {
	const op = "DescribeGathering"
	if err := types.ValidateRequest(op, req); err != nil {
		return nil, err
	}
	body, err := doer.Do(ctx, transport.Request{
		Method:    http.MethodGet,
		Service:   Service,
		Operation: op,
		Path:      gatheringsPath(req.GatheringPoolName),
		Query:     pageQuery(pageToken, limit),
	})
	if err != nil {
		return nil, err
	}
	var page types.GatheringPage
	if err := decode(op, body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateGathering creates a gathering, which boots a game server players
// connect to over WebSocket. UserIDs, when set, restricts who may join.
func CreateGathering(ctx context.Context, doer Doer, req *types.CreateGatheringRequest) (*types.Gathering, error) {
	const op = "CreateGathering"
	if err := types.ValidateRequest(op, req); err != nil {
		return nil, err
	}
	body, err := doer.Do(ctx, transport.Request{
		Method:    http.MethodPost,
		Service:   Service,
		Operation: op,
		Path:      gatheringsPath(req.GatheringPoolName),
		Body:      createGatheringBody(req),
	})
	if err != nil {
		return nil, err
	}
	return decodeItem[types.Gathering](op, body)
}

// GetGathering retrieves a gathering by pool and gathering name.
func GetGathering(ctx context.Context, doer Doer, req *types.GetGatheringRequest) (*types.Gathering, error) {
	const op = "GetGathering"
	if err := types.ValidateRequest(op, req); err != nil {
		return nil, err
	}
	body, err := doer.Do(ctx, transport.Request{
		Method:    http.MethodGet,
		Service:   Service,
		Operation: op,
		Path:      gatheringPath(req.GatheringPoolName, req.GatheringName),
	})
	if err != nil {
		return nil, err
	}
	return decodeItem[types.Gathering](op, body)
}

// DeleteGathering removes a gathering.
func DeleteGathering(ctx context.Context, doer Doer, req *types.DeleteGatheringRequest) error {
	const op = "DeleteGathering"
	if err := types.ValidateRequest(op, req); err != nil {
		return err
	}
	_, err := doer.Do(ctx, transport.Request{
		Method:    http.MethodDelete,
		Service:   Service,
		Operation: op,
		Path:      gatheringPath(req.GatheringPoolName, req.GatheringName),
	})
	return err
}

func createGatheringBody(req *types.CreateGatheringRequest) *types.CreateGatheringBody {
	body := &types.CreateGatheringBody{Name: req.Name}
	if req.UserIDs != nil {
		ids := req.UserIDs
		body.UserIDs = &ids
	}
	return body
}
