package slot

import "github.com/google/uuid"

type FilterKind string

const (
	FilterAll           FilterKind = "all"
	FilterAvailableOnly FilterKind = "available_only"
	FilterByClaimant    FilterKind = "by_claimant"
)

// Filter selects which slots a list operation returns.
type Filter struct {
	Kind       FilterKind
	ClaimantID uuid.UUID
}

func AllSlots() Filter {
	return Filter{Kind: FilterAll}
}

func AvailableSlots() Filter {
	return Filter{Kind: FilterAvailableOnly}
}

func ClaimedBy(claimantID uuid.UUID) Filter {
	return Filter{Kind: FilterByClaimant, ClaimantID: claimantID}
}
