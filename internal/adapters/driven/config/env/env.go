// Package env applies environment overrides on top of stored settings.
// A .env file in the working directory is loaded first; variables already
// set in the process environment win over it.
package env

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	goenv "github.com/netflix/go-env"

	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/logger"
)

// Overrides are the supported environment variables. Empty means unset.
type Overrides struct {
	APIURL     string `env:"ACADEMICO_API_URL"`
	PublicURL  string `env:"ACADEMICO_PUBLIC_URL"`
	APITimeout string `env:"ACADEMICO_API_TIMEOUT"`
	Offline    string `env:"ACADEMICO_OFFLINE"`
}

// Load reads dotenv files (default ".env") into the process environment,
// ignoring missing files, and then decodes the overrides.
func Load(dotenvFiles ...string) (*Overrides, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
		logger.Debug("Loaded environment from %s", f)
	}

	var o Overrides
	if _, err := goenv.UnmarshalFromEnviron(&o); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	return &o, nil
}

// Apply writes the set overrides into settings. Invalid values are
// rejected with domain.ErrInvalidInput and settings is left untouched.
func (o *Overrides) Apply(settings *domain.AppSettings) error {
	next := *settings

	if v := strings.TrimSpace(o.APIURL); v != "" {
		next.API.BaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(o.PublicURL); v != "" {
		next.Portal.PublicURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(o.APITimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: ACADEMICO_API_TIMEOUT=%q", domain.ErrInvalidInput, v)
		}
		next.API.Timeout = d
	}
	if v := strings.TrimSpace(o.Offline); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: ACADEMICO_OFFLINE=%q", domain.ErrInvalidInput, v)
		}
		next.Offline = b
	}

	*settings = next
	return nil
}
