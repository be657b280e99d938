package api

// Artwork describes the artwork embedded in each auction entry.
type Artwork struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Auction is one entry of the GET /api/auctions listing.
// CurrentBid is null until the first bid lands. Status is one of
// "upcoming", "live", "ended" and is authoritative, the client never
// reclassifies it locally.
type Auction struct {
	Artwork       Artwork  `json:"artwork"`
	Status        string   `json:"status"`
	EndTime       string   `json:"end_time"`
	TimeRemaining string   `json:"time_remaining,omitempty"`
	CurrentBid    *float64 `json:"current_bid"`
	ID            int      `json:"id"`
	StartingBid   float64  `json:"starting_bid"`
	BidCount      int      `json:"bid_count"`
}

// AuctionsResponse wraps the full auction listing.
type AuctionsResponse struct {
	Auctions   []Auction   `json:"auctions"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination echoes the backend's paging metadata on listing responses.
type Pagination struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
}
