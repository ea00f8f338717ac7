package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge2985/El-Academico/internal/adapters/driven/location"
	"github.com/jorge2985/El-Academico/internal/adapters/driven/portal/memory"
	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
	"github.com/jorge2985/El-Academico/internal/core/services"
	"github.com/jorge2985/El-Academico/internal/testutil"
)

// MockLandingService implements driving.LandingService for testing.
type MockLandingService struct {
	LoadFunc func(ctx context.Context) domain.LandingView
}

func (m *MockLandingService) Load(ctx context.Context) domain.LandingView {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return domain.LandingView{
		State:      domain.LandingReady,
		Categories: []string{"Ciencias", "Medicina"},
	}
}

func newTestFactory() *services.SearchControllerFactory {
	return services.NewSearchControllerFactory(
		memory.NewSeeded(),
		testutil.NewFakeClock(),
		func(raw string) (driven.Location, error) { return location.New("https://portal.test", raw) },
		services.SearchControllerConfig{},
	)
}

func TestNewPorts(t *testing.T) {
	factory := newTestFactory()
	landingSvc := &MockLandingService{}

	ports := NewPorts(factory, landingSvc)

	require.NotNil(t, ports)
	assert.Equal(t, factory, ports.Searches)
	assert.Equal(t, landingSvc, ports.Landing)
	assert.Empty(t, ports.Location)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{"complete", NewPorts(newTestFactory(), &MockLandingService{}), nil},
		{"missing searches", &Ports{Landing: &MockLandingService{}}, ErrMissingSearchController},
		{"missing landing", &Ports{Searches: newTestFactory()}, ErrMissingLandingService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
