package services

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
	"github.com/jorge2985/El-Academico/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyAPIBaseURL       = "api.base_url"
	KeyAPITimeout       = "api.timeout"
	KeyAPIRate          = "api.rate_per_second"
	KeyPortalPublicURL  = "portal.public_url"
	KeySearchPageSize   = "search.page_size"
	KeySearchDebounceMS = "search.debounce_ms"
	KeyCategories       = "landing.categories"
	KeyOffline          = "offline"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		API: domain.APISettings{
			BaseURL:       s.getURL(KeyAPIBaseURL, defaults.API.BaseURL),
			Timeout:       s.getDuration(KeyAPITimeout, defaults.API.Timeout),
			RatePerSecond: s.getRate(defaults.API.RatePerSecond),
		},
		Portal: domain.PortalSettings{
			PublicURL: s.getURL(KeyPortalPublicURL, defaults.Portal.PublicURL),
		},
		Search: domain.SearchSettings{
			PageSize: s.getPositiveInt(KeySearchPageSize, defaults.Search.PageSize),
			Debounce: s.getDebounce(defaults.Search.Debounce),
		},
		Landing: domain.LandingSettings{
			Categories: s.getCategories(defaults.Landing.Categories),
		},
		Offline: s.configStore.GetBool(KeyOffline),
	}

	return settings, nil
}

// Set validates value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	var stored any
	switch key {
	case KeyAPIBaseURL, KeyPortalPublicURL:
		if err := validateURL(value); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
		}
		stored = strings.TrimRight(value, "/")
	case KeyAPITimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %s must be a positive duration like 15s", domain.ErrInvalidInput, key)
		}
		stored = d.String()
	case KeyAPIRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		stored = f
	case KeySearchPageSize:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		stored = n
	case KeySearchDebounceMS:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		stored = n
	case KeyCategories:
		categories := splitList(value)
		if len(categories) == 0 {
			return fmt.Errorf("%w: %s needs at least one category", domain.ErrInvalidInput, key)
		}
		stored = categories
	case KeyOffline:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		stored = b
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the settable keys in alphabetical order.
func (s *SettingsService) Keys() []string {
	keys := []string{
		KeyAPIBaseURL, KeyAPITimeout, KeyAPIRate, KeyPortalPublicURL,
		KeySearchPageSize, KeySearchDebounceMS, KeyCategories, KeyOffline,
	}
	sort.Strings(keys)
	return keys
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getURL(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" || validateURL(val) != nil {
		return defaultVal
	}
	return strings.TrimRight(val, "/")
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(s.configStore.GetString(key))
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func (s *SettingsService) getRate(defaultVal float64) float64 {
	if _, ok := s.configStore.Get(KeyAPIRate); !ok {
		return defaultVal
	}
	f := s.configStore.GetFloat(KeyAPIRate)
	if f < 0 {
		return defaultVal
	}
	return f
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	if n := s.configStore.GetInt(key); n > 0 {
		return n
	}
	return defaultVal
}

func (s *SettingsService) getDebounce(defaultVal time.Duration) time.Duration {
	if _, ok := s.configStore.Get(KeySearchDebounceMS); !ok {
		return defaultVal
	}
	ms := s.configStore.GetInt(KeySearchDebounceMS)
	if ms < 0 {
		return defaultVal
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *SettingsService) getCategories(defaultVal []string) []string {
	categories := s.configStore.GetStringSlice(KeyCategories)
	if len(categories) == 0 {
		return defaultVal
	}
	return categories
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
