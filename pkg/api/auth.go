package api

// LoginRequest is the payload for POST /api/auth/login. Username also
// accepts the account email, the backend matches either.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /api/auth/register.
// The artist fields are only read by the backend when IsArtist is set.
type RegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	ArtistName string `json:"artist_name,omitempty"`
	Bio        string `json:"bio,omitempty"`
	Specialty  string `json:"specialty,omitempty"`
	IsArtist   bool   `json:"is_artist"`
}

// User is the backend's representation of the signed-in principal,
// embedded in auth responses.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsArtist bool   `json:"is_artist"`
}

// AuthResponse is returned by both login and register on success.
type AuthResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Profile is returned by GET /api/user/profile (authorized).
type Profile struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	IsArtist  bool   `json:"is_artist"`
}

// ErrorResponse is the backend's error envelope for non-2xx statuses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
