package driving

import (
	"context"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

// LandingService assembles the landing page.
type LandingService interface {
	// Load fetches recent documents and posts concurrently. The context is
	// the cancellation token: a view returned with Cancelled set must not
	// be applied.
	Load(ctx context.Context) domain.LandingView
}
