package auth

import "errors"

// Domain errors for the auth package, checked with errors.Is().
var (
	// ErrTokenInvalid is returned when a session token fails signature or
	// claim validation.
	ErrTokenInvalid = errors.New("auth: token invalid")

	// ErrNoToken is returned when a request carries no session token.
	ErrNoToken = errors.New("auth: no token")
)
