package session

import (
	"context"
	"net/http"
	"time"

	"github.com/kunsthaus/canvasbid/internal/client/storage"
	"github.com/kunsthaus/canvasbid/internal/validation"
	pkgapi "github.com/kunsthaus/canvasbid/pkg/api"
)

// ProfileUpdate carries the account fields to change. Empty fields are
// left untouched by the backend; the artist fields only apply to
// artist accounts.
type ProfileUpdate struct {
	Email        string
	ArtistName   string
	Bio          string
	Specialty    string
	ProfileImage string
}

// UpdateProfile changes the account profile on the backend. A changed
// email is mirrored into the cached identity and the stored session so
// the local state keeps matching what the server believes.
func (s *Service) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	if update.Email != "" {
		if err := validation.ValidateEmail(update.Email); err != nil {
			return &AuthError{Reason: ReasonValidation, Message: err.Error()}
		}
	}

	err := s.Do(ctx, http.MethodPut, "/api/user/profile", pkgapi.UpdateProfileRequest{
		Email:        update.Email,
		ArtistName:   update.ArtistName,
		Bio:          update.Bio,
		Specialty:    update.Specialty,
		ProfileImage: update.ProfileImage,
	}, nil)
	if err != nil {
		return classifyAuthErr(err)
	}

	if update.Email == "" {
		return nil
	}

	s.mu.Lock()
	if s.identity == nil {
		s.mu.Unlock()
		return nil
	}
	s.identity.Email = update.Email
	identity := *s.identity
	token := s.token
	s.mu.Unlock()

	data := &storage.SessionData{
		AccessToken: token,
		User:        identity,
		SavedAt:     time.Now().UTC(),
	}
	if err := s.store.SaveSession(ctx, data); err != nil {
		s.logger.Warn("failed to persist updated profile", "error", err)
	}

	return nil
}

// ChangePassword rotates the account password. Both passwords are
// required and the new one must meet the backend's minimum length, so
// a doomed request never leaves the client.
func (s *Service) ChangePassword(ctx context.Context, current, next string) error {
	if current == "" {
		return &AuthError{Reason: ReasonValidation, Message: "current password is required"}
	}
	if err := validation.ValidatePassword(next); err != nil {
		return &AuthError{Reason: ReasonValidation, Message: err.Error()}
	}

	err := s.Do(ctx, http.MethodPost, "/api/user/change-password", pkgapi.ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	}, nil)
	if err != nil {
		return classifyAuthErr(err)
	}

	return nil
}
