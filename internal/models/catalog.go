package models

// Artist is a gallery artist profile from the catalog listing.
type Artist struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Specialty string `json:"specialty"`
	ImageURL  string `json:"image_url"`
	ID        int    `json:"id"`
	Works     int    `json:"works"`
	Featured  bool   `json:"featured"`
}

// Artwork is a catalog artwork outside of its auction context.
type Artwork struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	ArtistName  string  `json:"artist_name"`
	ID          int     `json:"id"`
	Price       float64 `json:"price"`
}
