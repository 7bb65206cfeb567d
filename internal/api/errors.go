package api

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated means the call needed a credential for an identity kind
// that is missing or was rejected by the platform.
var ErrUnauthenticated = errors.New("authentication required")

// ErrBadCreds is returned by Login when the platform rejects the email or
// password.
var ErrBadCreds = errors.New("invalid email or password")

// ErrNotFound covers 404s on catalog lookups.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed registration or quote fields. Fields is
// optional detail keyed by field name; Message always carries the platform's
// error text.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "invalid input"
}

// NetworkError wraps transport failures and 5xx responses. StatusCode is 0
// when no HTTP response was received at all.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TokenRejected reports whether err is a definitive verdict from the
// platform on the credential, as opposed to a transport failure where the
// request may never have arrived. The identity resolver purges stored
// credentials only on a definitive rejection.
func TokenRejected(err error) bool {
	if errors.Is(err, ErrUnauthenticated) {
		return true
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.StatusCode > 0
	}
	var ve *ValidationError
	return errors.As(err, &ve)
}
