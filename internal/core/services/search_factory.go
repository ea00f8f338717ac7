package services

import (
	"fmt"

	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
	"github.com/jorge2985/El-Academico/internal/core/ports/driving"
)

// Ensure SearchControllerFactory implements the interface.
var _ driving.SearchControllerFactory = (*SearchControllerFactory)(nil)

// LocationFunc builds a Location seeded from a URL or raw query string.
type LocationFunc func(raw string) (driven.Location, error)

// SearchControllerFactory creates one controller per search surface.
type SearchControllerFactory struct {
	client      driven.PortalClient
	clock       driven.Clock
	newLocation LocationFunc
	cfg         SearchControllerConfig
}

// NewSearchControllerFactory creates a factory sharing one portal client.
func NewSearchControllerFactory(
	client driven.PortalClient,
	clock driven.Clock,
	newLocation LocationFunc,
	cfg SearchControllerConfig,
) *SearchControllerFactory {
	return &SearchControllerFactory{
		client:      client,
		clock:       clock,
		newLocation: newLocation,
		cfg:         cfg,
	}
}

// NewController creates a controller whose location is seeded from raw.
func (f *SearchControllerFactory) NewController(raw string) (driving.SearchController, error) {
	loc, err := f.newLocation(raw)
	if err != nil {
		return nil, fmt.Errorf("parse location: %w", err)
	}
	return NewSearchController(f.client, loc, f.clock, f.cfg), nil
}

// WithConfig returns a factory with a different controller configuration,
// e.g. no debounce for one-shot callers.
func (f *SearchControllerFactory) WithConfig(cfg SearchControllerConfig) *SearchControllerFactory {
	clone := *f
	clone.cfg = cfg
	return &clone
}
