package domain

import "time"

// Default settings values.
const (
	DefaultAPIBaseURL    = "http://localhost:4000/api"
	DefaultPublicURL     = "http://localhost:3000"
	DefaultAPITimeout    = 15 * time.Second
	DefaultRatePerSecond = 5.0
	DefaultDebounce      = 500 * time.Millisecond
)

// DefaultCategories are the category links shown on the landing page.
var DefaultCategories = []string{
	"Ciencias",
	"Humanidades",
	"Ingeniería",
	"Medicina",
	"Derecho",
	"Economía",
}

// APISettings configures the portal REST client.
type APISettings struct {
	// BaseURL is the portal API root, e.g. https://portal.example/api.
	BaseURL string

	// Timeout bounds each request.
	Timeout time.Duration

	// RatePerSecond throttles outgoing requests. Zero disables throttling.
	RatePerSecond float64
}

// PortalSettings configures the browsable side of the portal.
type PortalSettings struct {
	// PublicURL is the portal web root used to build shareable links.
	PublicURL string
}

// SearchSettings configures the search controller.
type SearchSettings struct {
	// PageSize is the number of documents requested per page.
	PageSize int

	// Debounce is the quiet period before a new search is issued.
	Debounce time.Duration
}

// LandingSettings configures the landing page.
type LandingSettings struct {
	// Categories are the static category links.
	Categories []string
}

// AppSettings holds all application configuration.
type AppSettings struct {
	API     APISettings
	Portal  PortalSettings
	Search  SearchSettings
	Landing LandingSettings

	// Offline serves the built-in catalogue instead of calling the API.
	Offline bool
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	categories := make([]string, len(DefaultCategories))
	copy(categories, DefaultCategories)

	return AppSettings{
		API: APISettings{
			BaseURL:       DefaultAPIBaseURL,
			Timeout:       DefaultAPITimeout,
			RatePerSecond: DefaultRatePerSecond,
		},
		Portal: PortalSettings{
			PublicURL: DefaultPublicURL,
		},
		Search: SearchSettings{
			PageSize: DefaultPageSize,
			Debounce: DefaultDebounce,
		},
		Landing: LandingSettings{
			Categories: categories,
		},
	}
}
