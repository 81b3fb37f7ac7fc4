package common

import "errors"

// Sentinel errors shared across components. Match with errors.Is; the API
// error type maps HTTP statuses onto the transport-level values below.
var (
	// Transport / API-level errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")

	// Session-level errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrBusy             = errors.New("another request is in flight")

	// Token lifecycle errors.
	ErrMalformedToken = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")
)
