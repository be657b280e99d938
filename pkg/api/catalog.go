package api

// Artist is one entry of the GET /api/artists listing.
type Artist struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Specialty string `json:"specialty"`
	Image     string `json:"image"`
	Works     int    `json:"works"`
	Featured  bool   `json:"featured"`
}

// ArtistsResponse wraps the artist listing.
type ArtistsResponse struct {
	Artists    []Artist    `json:"artists"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ArtworkListing is one entry of GET /api/artworks and of search results.
type ArtworkListing struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Artist      string  `json:"artist"`
	Price       float64 `json:"price"`
}

// ArtworksResponse wraps the artwork listing.
type ArtworksResponse struct {
	Artworks   []ArtworkListing `json:"artworks"`
	Pagination *Pagination      `json:"pagination,omitempty"`
}

// CreateArtworkRequest is the payload for POST /api/artworks
// (authorized, artist accounts only). Title and StartingPrice are
// required; the backend defaults Category to "contemporary".
type CreateArtworkRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	StartingPrice float64 `json:"starting_price"`
}

// CreateArtworkResponse is returned on successful artwork creation.
type CreateArtworkResponse struct {
	Message string         `json:"message"`
	Artwork ArtworkListing `json:"artwork"`
}

// SearchResponse wraps GET /api/search?q= results across both
// artworks and artists.
type SearchResponse struct {
	Query        string           `json:"query"`
	Artworks     []ArtworkListing `json:"artworks"`
	Artists      []Artist         `json:"artists"`
	TotalResults int              `json:"total_results"`
}
