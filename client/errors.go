package client

import (
	"fmt"

	"github.com/pkg/errors"
)

// The error taxonomy of the console. Every operation returns exactly one of
// these (possibly wrapped); callers branch with errors.As.

// NetworkError means the request never completed: transport failure,
// timeout, or an unreadable response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError means the session is missing, expired, or rejected; the caller
// must force a fresh login.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication required"
	}
	return e.Message
}

// ValidationError means the payload was rejected, either by the local
// pre-flight checks or by the backend.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError means the certificate number is unknown to the backend.
type NotFoundError struct {
	CertNumber string
}

func (e *NotFoundError) Error() string {
	if e.CertNumber == "" {
		return "not found"
	}
	return fmt.Sprintf("certificate %s not found", e.CertNumber)
}

// APIError is a backend rejection that fits no narrower category. Code is
// the envelope code, not necessarily the HTTP status.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// PartialCreateError reports a create that half-succeeded: the certificate
// exists on the backend but its test-data batch was not accepted. It is a
// distinct outcome, neither total failure nor silent success.
type PartialCreateError struct {
	Certificate *Certificate
	Err         error
}

func (e *PartialCreateError) Error() string {
	return fmt.Sprintf("certificate %s created, but submitting test data failed: %v",
		e.Certificate.CertNumber, e.Err)
}

func (e *PartialCreateError) Unwrap() error { return e.Err }

// IsAuthError reports whether err (anywhere in its chain) demands
// re-authentication.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// IsNotFound reports whether err is an unknown-certificate lookup.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsPartialCreate extracts a partial-success outcome from err, if present.
func IsPartialCreate(err error) (*PartialCreateError, bool) {
	var pe *PartialCreateError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
