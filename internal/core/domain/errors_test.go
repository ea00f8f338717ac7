package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrPortalUnavailable", ErrPortalUnavailable},
		{"ErrControllerClosed", ErrControllerClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("search page 2: %w", ErrPortalUnavailable)

	assert.True(t, errors.Is(wrapped, ErrPortalUnavailable))
	assert.False(t, errors.Is(wrapped, ErrRateLimited))
}

func TestLandingView_ErrorMessage(t *testing.T) {
	assert.Equal(t, "", LandingView{}.ErrorMessage())
	assert.Equal(t, "timeout", LandingView{State: LandingError, Err: errors.New("timeout")}.ErrorMessage())
}

func TestLandingState_String(t *testing.T) {
	assert.Equal(t, "loading", LandingLoading.String())
	assert.Equal(t, "error", LandingError.String())
	assert.Equal(t, "ready", LandingReady.String())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, DefaultPageSize, s.Search.PageSize)
	assert.Equal(t, DefaultDebounce, s.Search.Debounce)
	assert.Equal(t, DefaultCategories, s.Landing.Categories)

	s.Landing.Categories[0] = "changed"
	assert.Equal(t, "Ciencias", DefaultCategories[0])
}
