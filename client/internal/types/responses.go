package types

// ------------------------------
// Response Types
// ------------------------------

// GatheringPoolItem wraps single-pool responses.
type GatheringPoolItem struct {
	Item *GatheringPool `json:"item"`
}

// GatheringItem wraps single-gathering responses.
type GatheringItem struct {
	Item *Gathering `json:"item"`
}

// GatheringPoolPage is the DescribeGatheringPool response.
type GatheringPoolPage = Page[GatheringPool]

// GatheringPage is the DescribeGathering response.
type GatheringPage = Page[Gathering]
