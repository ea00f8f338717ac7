package mcp

import (
	"context"

	"github.com/jorge2985/El-Academico/internal/adapters/driven/location"
	"github.com/jorge2985/El-Academico/internal/adapters/driven/portal/memory"
	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
	"github.com/jorge2985/El-Academico/internal/core/services"
	"github.com/jorge2985/El-Academico/internal/testutil"
)

const testPublicURL = "https://portal.test"

// mockLandingService returns a fixed landing view.
type mockLandingService struct {
	view domain.LandingView
}

func (m *mockLandingService) Load(_ context.Context) domain.LandingView {
	return m.view
}

func newCatalogueFactory(catalogue *memory.Catalogue) *services.SearchControllerFactory {
	return services.NewSearchControllerFactory(
		catalogue,
		testutil.NewFakeClock(),
		func(raw string) (driven.Location, error) { return location.New(testPublicURL, raw) },
		services.SearchControllerConfig{},
	)
}

func newTestPorts() (*Ports, *memory.Catalogue) {
	catalogue := memory.NewSeeded()
	return &Ports{
		Searches: newCatalogueFactory(catalogue),
		Landing:  services.NewLandingAggregator(catalogue, []string{"Ciencias", "Derecho"}),
	}, catalogue
}
