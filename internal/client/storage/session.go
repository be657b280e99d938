package storage

import (
	"context"
	"time"

	"github.com/kunsthaus/canvasbid/internal/models"
)

// SessionStorage is the durable slot for the authenticated session,
// the client-side analogue of the auth-token and serialized-identity
// storage keys. Token and identity are written and cleared together,
// a half-written session must never be observable.
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one.
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound if none exists and ErrSessionCorrupt
	// (wrapped) if the stored bytes no longer deserialize.
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout). Deleting an
	// absent session returns ErrSessionNotFound.
	DeleteSession(ctx context.Context) error
}

// MetadataStorage keeps small bookkeeping values that survive restarts.
type MetadataStorage interface {
	// SaveLastRefresh records when the auction listing was last
	// fetched successfully.
	SaveLastRefresh(ctx context.Context, at time.Time) error

	// GetLastRefresh returns the recorded refresh time, zero when no
	// refresh has happened yet.
	GetLastRefresh(ctx context.Context) (time.Time, error)
}

// SessionData is the persisted form of an authenticated session:
// the opaque bearer token plus the identity snapshot it belongs to.
type SessionData struct {
	SavedAt     time.Time       `json:"saved_at"`
	AccessToken string          `json:"access_token"`
	User        models.Identity `json:"user"`
}
