package portalhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

// StatusError is a non-2xx response from the portal.
type StatusError struct {
	StatusCode int
	Body       string
	RequestID  string

	// RetryAfter is set from the Retry-After header on 429 responses.
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	if msg := e.Message(); msg != "" {
		return msg
	}
	return fmt.Sprintf("portal responded %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Message returns the "message" field of a JSON error body, if any.
func (e *StatusError) Message() string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(e.Body), &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return strings.TrimSpace(body.Message)
	}
	return strings.TrimSpace(body.Error)
}

// Is lets errors.Is match 404 to domain.ErrNotFound, 429 to
// domain.ErrRateLimited and 5xx to domain.ErrPortalUnavailable.
func (e *StatusError) Is(target error) bool {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return target == domain.ErrNotFound
	case e.StatusCode == http.StatusTooManyRequests:
		return target == domain.ErrRateLimited
	case e.StatusCode >= 500:
		return target == domain.ErrPortalUnavailable
	default:
		return false
	}
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
