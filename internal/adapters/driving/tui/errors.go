package tui

import "errors"

// ErrMissingSearchController is returned when no search controller factory is provided.
var ErrMissingSearchController = errors.New("tui: search controller factory is required")

// ErrMissingLandingService is returned when the landing service is not provided.
var ErrMissingLandingService = errors.New("tui: landing service is required")
