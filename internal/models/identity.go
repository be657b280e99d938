package models

// Identity is the client-visible profile of the signed-in principal.
// The bearer token is held separately by the session controller; an
// Identity without a token (or the other way round) never exists.
type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	ID       int    `json:"id"`
	IsArtist bool   `json:"is_artist"`
}
