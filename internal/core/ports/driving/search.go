package driving

import (
	"context"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

// SearchController drives an incremental, paginated search whose state is
// mirrored into a shareable location.
type SearchController interface {
	// Start seeds the query from the current location and issues the
	// initial search without waiting for the debounce delay.
	Start(ctx context.Context) error

	// SetTerm replaces the search term and schedules a debounced new search.
	SetTerm(term string)

	// SetFilters merges partial into the filter set, resets the page to 1
	// and schedules a debounced new search.
	SetFilters(partial map[string]string) error

	// Flush runs a pending debounced search immediately.
	// It reports whether a search was pending.
	Flush(ctx context.Context) bool

	// LoadMore fetches the next page and appends it. It is a no-op while
	// a fetch is in flight or when there are no more pages.
	LoadMore(ctx context.Context) error

	// State returns a snapshot of the search state.
	State() domain.SearchUIState

	// ShareURL returns the full shareable address of the current state.
	ShareURL() string

	// Subscribe returns a channel carrying the latest state after each change.
	Subscribe() <-chan domain.SearchUIState

	// Close cancels any pending search; later responses are ignored.
	Close()
}

// SearchControllerFactory creates controllers bound to a location.
// Each search surface (TUI view, CLI invocation, MCP call) owns its own
// controller.
type SearchControllerFactory interface {
	NewController(location string) (SearchController, error)
}
