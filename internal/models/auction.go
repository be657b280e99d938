package models

import "time"

// AuctionStatus is the lifecycle stage of an auction. The backend is
// authoritative: upcoming -> live -> ended, never backwards, and the
// client only ever learns about a transition from a fresh listing.
type AuctionStatus string

const (
	StatusUpcoming AuctionStatus = "upcoming"
	StatusLive     AuctionStatus = "live"
	StatusEnded    AuctionStatus = "ended"
)

// Valid reports whether s is one of the known lifecycle stages.
func (s AuctionStatus) Valid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusEnded:
		return true
	}
	return false
}

// Auction is the live bidding state of a single artwork. Instances are
// replaced wholesale on every listing refresh; the only local mutation
// is the optimistic update after a successful bid.
type Auction struct {
	EndTime     time.Time     `json:"end_time"`
	Title       string        `json:"title"`
	ArtistName  string        `json:"artist_name"`
	ImageURL    string        `json:"image_url"`
	Category    string        `json:"category"`
	Status      AuctionStatus `json:"status"`
	CurrentBid  *float64      `json:"current_bid"`
	ID          int           `json:"id"`
	StartingBid float64       `json:"starting_bid"`
	BidCount    int           `json:"bid_count"`
}

// Price returns the effective price of the auction: the current bid
// when one exists, the starting bid otherwise.
func (a *Auction) Price() float64 {
	if a.CurrentBid != nil {
		return *a.CurrentBid
	}
	return a.StartingBid
}

// TimeRemaining returns the duration until the auction closes, zero if
// it already has.
func (a *Auction) TimeRemaining(now time.Time) time.Duration {
	if remaining := a.EndTime.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}

// Bid is one amount-and-bidder record in an auction's history,
// ordered most-recent-first within a history.
type Bid struct {
	CreatedAt  time.Time `json:"created_at"`
	BidderName string    `json:"bidder_name"`
	Amount     float64   `json:"amount"`
}
