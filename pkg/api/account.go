package api

// UpdateProfileRequest is the payload for PUT /api/user/profile
// (authorized). The backend only touches fields present in the JSON, so
// everything is omitempty; the artist fields are ignored for
// collector accounts.
type UpdateProfileRequest struct {
	Email        string `json:"email,omitempty"`
	ArtistName   string `json:"artist_name,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Specialty    string `json:"specialty,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// ChangePasswordRequest is the payload for POST /api/user/change-password
// (authorized).
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// MessageResponse is the bare success envelope the account endpoints
// return.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserArtworksResponse wraps GET /api/user/artworks (authorized), the
// signed-in artist's own submissions.
type UserArtworksResponse struct {
	Artworks []ArtworkListing `json:"artworks"`
}
