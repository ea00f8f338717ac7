package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRateLimited indicates the portal rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrPortalUnavailable indicates the portal API could not be reached
	// or answered with a server error.
	ErrPortalUnavailable = errors.New("portal unavailable")

	// ErrControllerClosed indicates the search controller was closed.
	ErrControllerClosed = errors.New("search controller closed")
)
