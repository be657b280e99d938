package session

import (
	"errors"
	"fmt"
)

// AuthReason classifies authentication failures.
type AuthReason string

const (
	// ReasonInvalidCredentials means the backend rejected the login.
	ReasonInvalidCredentials AuthReason = "invalid_credentials"
	// ReasonRateLimited means the backend throttled the request.
	ReasonRateLimited AuthReason = "rate_limited"
	// ReasonValidation means the input was rejected before or by the
	// backend's validation.
	ReasonValidation AuthReason = "validation"
	// ReasonNoToken means an authorized request was attempted without
	// a stored token; no network call is made in that case.
	ReasonNoToken AuthReason = "no_token"
	// ReasonExpired means the backend reported the token expired; the
	// session has already been logged out when this is returned.
	ReasonExpired AuthReason = "expired"
)

// AuthError is an authentication failure with a machine-readable
// reason.
type AuthError struct {
	Err     error
	Reason  AuthReason
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("auth error (%s): %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("auth error (%s)", e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// AuthReasonOf extracts the AuthError reason from err, empty when err
// is not an AuthError.
func AuthReasonOf(err error) AuthReason {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Reason
	}
	return ""
}
