package driving

import "github.com/jorge2985/El-Academico/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Set validates and persists a single setting by key.
	Set(key, value string) error

	// Keys lists the settable keys.
	Keys() []string

	// Path returns where settings are persisted.
	Path() string
}
