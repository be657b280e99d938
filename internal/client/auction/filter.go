package auction

import "github.com/kunsthaus/canvasbid/internal/models"

// PriceRange bounds the starting bid. Max of zero means unbounded
// above, so the "5000+" style filter is {Min: 5000}.
type PriceRange struct {
	Min float64
	Max float64
}

// Contains reports whether price falls inside the range.
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	if r.Max > 0 && price > r.Max {
		return false
	}
	return true
}

// Criteria selects a subset of the in-memory auction collection. Zero
// fields act as wildcards; set fields combine with logical AND.
type Criteria struct {
	Status     models.AuctionStatus
	Category   string
	PriceRange *PriceRange
}

// Matches reports whether a satisfies every set criterion. The price
// criterion applies to the starting bid, matching the gallery page
// behavior.
func (c Criteria) Matches(a *models.Auction) bool {
	if c.Status != "" && a.Status != c.Status {
		return false
	}
	if c.Category != "" && a.Category != c.Category {
		return false
	}
	if c.PriceRange != nil && !c.PriceRange.Contains(a.StartingBid) {
		return false
	}
	return true
}
