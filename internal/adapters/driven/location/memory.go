// Package location provides the address the search state is mirrored into.
package location

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
)

// SearchPath is appended to the portal public URL for search links.
const SearchPath = "/search"

// Ensure Memory implements the interface.
var _ driven.Location = (*Memory)(nil)

// Memory holds a shareable search URL in memory. Replace rewrites only the
// query string, keeping scheme, host and path.
type Memory struct {
	mu       sync.RWMutex
	base     url.URL
	values   url.Values
	replaced int
}

// New creates a location under publicURL seeded from raw, which may be a
// full URL, a query string with or without a leading "?", or empty.
// A full URL keeps its own scheme, host and path.
func New(publicURL, raw string) (*Memory, error) {
	base, err := url.Parse(strings.TrimRight(publicURL, "/") + SearchPath)
	if err != nil {
		return nil, fmt.Errorf("parse public url: %w", err)
	}

	m := &Memory{base: *base, values: url.Values{}}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return m, nil
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse location %q: %w", raw, err)
		}
		m.values = u.Query()
		u.RawQuery = ""
		u.Fragment = ""
		m.base = *u
		return m, nil
	}

	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return nil, fmt.Errorf("parse query %q: %w", raw, err)
	}
	m.values = values
	return m, nil
}

// Current returns a copy of the current query parameters.
func (m *Memory) Current() url.Values {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneValues(m.values)
}

// Replace swaps the query parameters.
func (m *Memory) Replace(values url.Values) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = cloneValues(values)
	m.replaced++
}

// String renders the full address.
func (m *Memory) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u := m.base
	u.RawQuery = m.values.Encode()
	return u.String()
}

// Replacements returns how many times Replace was called.
func (m *Memory) Replacements() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.replaced
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
