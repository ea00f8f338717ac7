package mcp

import (
	"github.com/jorge2985/El-Academico/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Searches creates one controller per tool call. It should be
	// configured without debounce.
	Searches driving.SearchControllerFactory

	// Landing aggregates recent documents, posts and categories.
	Landing driving.LandingService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Searches == nil {
		return ErrMissingSearchFactory
	}
	if p.Landing == nil {
		return ErrMissingLandingService
	}
	return nil
}
