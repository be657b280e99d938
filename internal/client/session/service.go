package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	clientapi "github.com/kunsthaus/canvasbid/internal/client/api"
	"github.com/kunsthaus/canvasbid/internal/client/storage"
	"github.com/kunsthaus/canvasbid/internal/models"
	"github.com/kunsthaus/canvasbid/internal/validation"
	pkgapi "github.com/kunsthaus/canvasbid/pkg/api"
)

// API is the slice of the backend client the session controller needs.
type API interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error)
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error)
	Do(ctx context.Context, method, path, token string, body, result any) error
}

// Listener is notified whenever the authentication state changes.
// identity is nil when authenticated is false.
type Listener func(authenticated bool, identity *models.Identity)

// Credentials is the login input.
type Credentials struct {
	Username string
	Password string
}

// Registration is the sign-up input.
type Registration struct {
	Username   string
	Email      string
	Password   string
	ArtistName string
	Bio        string
	Specialty  string
	IsArtist   bool
}

// Service is the single source of truth for who is logged in. It owns
// the bearer token and identity snapshot, persists them together, and
// fans state changes out to subscribed listeners.
type Service struct {
	api       API
	store     storage.SessionStorage
	logger    *slog.Logger
	mu        sync.RWMutex
	token     string
	identity  *models.Identity
	listeners map[string]Listener
}

// New creates the session controller and hydrates it from storage.
// A corrupt stored session is cleared and treated as "not
// authenticated"; it is never surfaced as a constructor error.
func New(ctx context.Context, api API, store storage.SessionStorage, logger *slog.Logger) *Service {
	s := &Service{
		api:       api,
		store:     store,
		logger:    logger,
		listeners: make(map[string]Listener),
	}
	s.hydrate(ctx)
	return s
}

// hydrate loads the persisted session, if any.
func (s *Service) hydrate(ctx context.Context) {
	data, err := s.store.GetSession(ctx)
	switch {
	case err == nil:
		if data.AccessToken == "" || data.User.ID == 0 {
			// Token and identity exist together or not at all.
			s.logger.Warn("stored session is incomplete, clearing it")
			s.clearStoredSession(ctx)
			return
		}
		s.token = data.AccessToken
		identity := data.User
		s.identity = &identity
	case errors.Is(err, storage.ErrSessionNotFound):
		// First run or logged out, nothing to restore.
	case errors.Is(err, storage.ErrSessionCorrupt):
		s.logger.Warn("stored session is corrupt, clearing it", "error", err)
		s.clearStoredSession(ctx)
	default:
		s.logger.Warn("failed to read stored session", "error", err)
	}
}

// Login authenticates against the backend. On success the token and
// identity are persisted together, the in-memory state is updated and
// listeners are notified with (true, identity). On failure nothing
// changes.
func (s *Service) Login(ctx context.Context, creds Credentials) (*models.Identity, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, &AuthError{Reason: ReasonValidation, Message: "username and password are required"}
	}

	resp, err := s.api.Login(ctx, pkgapi.LoginRequest{
		Username: creds.Username,
		Password: creds.Password,
	})
	if err != nil {
		return nil, classifyAuthErr(err)
	}

	identity := identityFromUser(resp.User)
	if err := s.adopt(ctx, resp.AccessToken, identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

// Register creates a new account. The success path is identical to
// Login: the returned token and identity become the active session.
func (s *Service) Register(ctx context.Context, reg Registration) (*models.Identity, error) {
	if err := validation.ValidateUsername(reg.Username); err != nil {
		return nil, &AuthError{Reason: ReasonValidation, Message: err.Error()}
	}
	if err := validation.ValidateEmail(reg.Email); err != nil {
		return nil, &AuthError{Reason: ReasonValidation, Message: err.Error()}
	}
	if err := validation.ValidatePassword(reg.Password); err != nil {
		return nil, &AuthError{Reason: ReasonValidation, Message: err.Error()}
	}

	resp, err := s.api.Register(ctx, pkgapi.RegisterRequest{
		Username:   reg.Username,
		Email:      reg.Email,
		Password:   reg.Password,
		IsArtist:   reg.IsArtist,
		ArtistName: reg.ArtistName,
		Bio:        reg.Bio,
		Specialty:  reg.Specialty,
	})
	if err != nil {
		return nil, classifyAuthErr(err)
	}

	identity := identityFromUser(resp.User)
	if err := s.adopt(ctx, resp.AccessToken, identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

// adopt persists and installs a fresh session, then notifies listeners.
func (s *Service) adopt(ctx context.Context, token string, identity models.Identity) error {
	if token == "" {
		return &AuthError{Reason: ReasonValidation, Message: "backend returned an empty access token"}
	}

	data := &storage.SessionData{
		AccessToken: token,
		User:        identity,
		SavedAt:     time.Now().UTC(),
	}
	if err := s.store.SaveSession(ctx, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	ident := identity
	s.identity = &ident
	s.mu.Unlock()

	s.notify(true, &identity)
	return nil
}

// Logout clears the session unconditionally. Storage trouble is logged
// but never prevents the local logout. Calling it while already logged
// out is a no-op beyond the listener notification.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.mu.Unlock()

	s.clearStoredSession(ctx)
	s.notify(false, nil)
}

func (s *Service) clearStoredSession(ctx context.Context) {
	if err := s.store.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		s.logger.Warn("failed to delete stored session", "error", err)
	}
}

// IsAuthenticated reports whether both a token and an identity are
// present. Pure, no I/O.
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.identity != nil
}

// CurrentUser returns a snapshot of the cached identity, nil when not
// authenticated. Never triggers a network call.
func (s *Service) CurrentUser() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// TokenExpiry reports when the access token expires, reading the exp
// claim without verifying the signature (the backend owns validation).
// ok is false when not authenticated or the token carries no expiry.
func (s *Service) TokenExpiry() (expiry time.Time, ok bool) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Do performs an authorized request. Without a token it fails fast with
// AuthError{no_token} and no network call. A 401 from the backend is
// treated as token expiry: the session is logged out centrally and
// AuthError{expired} is returned. Every other response passes through
// unchanged.
func (s *Service) Do(ctx context.Context, method, path string, body, result any) error {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return &AuthError{Reason: ReasonNoToken, Message: "not authenticated"}
	}

	err := s.api.Do(ctx, method, path, token, body, result)

	var apiErr *clientapi.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		s.Logout(ctx)
		return &AuthError{Reason: ReasonExpired, Message: "session expired, please log in again", Err: err}
	}

	return err
}

// Subscribe registers a listener and returns its handle. The handle,
// not callback identity, is what Unsubscribe keys on.
func (s *Service) Subscribe(listener Listener) string {
	handle := uuid.NewString()
	s.mu.Lock()
	s.listeners[handle] = listener
	s.mu.Unlock()
	return handle
}

// Unsubscribe removes the listener registered under handle.
func (s *Service) Unsubscribe(handle string) {
	s.mu.Lock()
	delete(s.listeners, handle)
	s.mu.Unlock()
}

// notify fans the state change out to all listeners. A panicking
// listener is logged and isolated, it never stops the others.
func (s *Service) notify(authenticated bool, identity *models.Identity) {
	s.mu.RLock()
	snapshot := make(map[string]Listener, len(s.listeners))
	for handle, listener := range s.listeners {
		snapshot[handle] = listener
	}
	s.mu.RUnlock()

	for handle, listener := range snapshot {
		s.invoke(handle, listener, authenticated, identity)
	}
}

func (s *Service) invoke(handle string, listener Listener, authenticated bool, identity *models.Identity) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("auth listener panicked", "listener", handle, "panic", r)
		}
	}()

	if identity != nil {
		snapshot := *identity
		identity = &snapshot
	}
	listener(authenticated, identity)
}

// classifyAuthErr maps backend login/register failures onto the
// AuthError taxonomy. Transport errors pass through wrapped.
func classifyAuthErr(err error) error {
	var apiErr *clientapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return &AuthError{Reason: ReasonInvalidCredentials, Message: apiErr.Message, Err: err}
	case http.StatusTooManyRequests:
		return &AuthError{Reason: ReasonRateLimited, Message: apiErr.Message, Err: err}
	case http.StatusBadRequest:
		return &AuthError{Reason: ReasonValidation, Message: apiErr.Message, Err: err}
	}
	return err
}

func identityFromUser(u pkgapi.User) models.Identity {
	return models.Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsArtist: u.IsArtist,
	}
}
