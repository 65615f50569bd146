package client

import "github.com/gs2io/gs2-realtime-go/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
// Requests
type (
	CreateGatheringPoolRequest = types.CreateGatheringPoolRequest
	GetGatheringPoolRequest    = types.GetGatheringPoolRequest
	UpdateGatheringPoolRequest = types.UpdateGatheringPoolRequest
	DeleteGatheringPoolRequest = types.DeleteGatheringPoolRequest
	DescribeGatheringRequest   = types.DescribeGatheringRequest
	CreateGatheringRequest     = types.CreateGatheringRequest
	GetGatheringRequest        = types.GetGatheringRequest
	DeleteGatheringRequest     = types.DeleteGatheringRequest

	// Domain entities
	GatheringPool = types.GatheringPool
	Gathering     = types.Gathering
	UserIDList    = types.UserIDList
)

// Page is the cursor envelope returned by list operations.
type Page[T any] = types.Page[T]

// ParseUserIDs turns a comma-joined allow-list into a UserIDList. It is sent
// back to the backend exactly as given.
func ParseUserIDs(s string) UserIDList { return types.ParseUserIDs(s) }

// String returns a pointer to s, for optional request fields.
func String(s string) *string { return &s }
