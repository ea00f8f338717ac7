// Package tui provides an interactive terminal user interface for the
// academic portal. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/jorge2985/El-Academico/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Searches creates a search controller per visit of the search view.
	Searches driving.SearchControllerFactory

	// Landing aggregates recent documents and posts.
	Landing driving.LandingService

	// Location seeds the first search view, e.g. from --url.
	Location string
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(searches driving.SearchControllerFactory, landing driving.LandingService) *Ports {
	return &Ports{
		Searches: searches,
		Landing:  landing,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Searches == nil {
		return ErrMissingSearchController
	}
	if p.Landing == nil {
		return ErrMissingLandingService
	}
	return nil
}
