package types

// ------------------------------
// Request Types
// ------------------------------
//
// Required fields carry a `validate:"required"` tag and are checked in
// declaration order. Optional scalars are pointers: nil means "not provided".

// CreateGatheringPoolRequest holds parameters for a new gathering pool.
type CreateGatheringPoolRequest struct {
	Name        *string
	Description *string
}

// GetGatheringPoolRequest addresses a single pool.
type GetGatheringPoolRequest struct {
	GatheringPoolName string `validate:"required"`
}

// UpdateGatheringPoolRequest changes the mutable fields of a pool.
type UpdateGatheringPoolRequest struct {
	GatheringPoolName string `validate:"required"`
	Description       *string
}

// DeleteGatheringPoolRequest addresses the pool to remove.
type DeleteGatheringPoolRequest struct {
	GatheringPoolName string `validate:"required"`
}

// DescribeGatheringRequest addresses the pool whose gatherings are listed.
type DescribeGatheringRequest struct {
	GatheringPoolName string `validate:"required"`
}

// CreateGatheringRequest holds parameters for a new gathering.
// A nil UserIDs is not sent and lets anyone holding the secret join; a
// non-nil list is always sent, an empty one as "".
type CreateGatheringRequest struct {
	GatheringPoolName string `validate:"required"`
	Name              *string
	UserIDs           UserIDList
}

// GetGatheringRequest addresses a single gathering.
type GetGatheringRequest struct {
	GatheringPoolName string `validate:"required"`
	GatheringName     string `validate:"required"`
}

// DeleteGatheringRequest addresses the gathering to remove.
type DeleteGatheringRequest struct {
	GatheringPoolName string `validate:"required"`
	GatheringName     string `validate:"required"`
}

// ------------------------------
// Wire bodies
// ------------------------------
//
// Bodies list only the fields the backend accepts, in the order it documents
// them. Anything else on a request never leaves the client.

// CreateGatheringPoolBody is the POST /gatheringPool payload.
type CreateGatheringPoolBody struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateGatheringPoolBody is the PUT /gatheringPool/{name} payload.
type UpdateGatheringPoolBody struct {
	Description *string `json:"description,omitempty"`
}

// CreateGatheringBody is the POST /gatheringPool/{pool}/gathering payload.
type CreateGatheringBody struct {
	Name    *string     `json:"name,omitempty"`
	UserIDs *UserIDList `json:"userIds,omitempty"`
}
