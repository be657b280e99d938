package api

// PlaceBidRequest is the payload for POST /api/bids/ (authorized).
type PlaceBidRequest struct {
	Amount    float64 `json:"amount"`
	ArtworkID int     `json:"artwork_id"`
}

// Bid is one historical bid entry as delivered by the backend.
type Bid struct {
	BidderName string  `json:"bidder_name"`
	CreatedAt  string  `json:"created_at"`
	Amount     float64 `json:"amount"`
}

// PlaceBidResponse confirms an accepted bid.
type PlaceBidResponse struct {
	Message string `json:"message"`
	Bid     *Bid   `json:"bid,omitempty"`
}

// BidsResponse wraps GET /api/bids/artwork/{id}. The backend returns
// bids most-recent-first; an auction with no bids yields an empty list.
type BidsResponse struct {
	Bids []Bid `json:"bids"`
}
