package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session is stored
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCorrupt indicates that the stored session bytes could
	// not be deserialized
	ErrSessionCorrupt = errors.New("stored session is corrupt")
)
