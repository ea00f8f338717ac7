// Package config holds the key/value table shared by the configuration
// stores. Keys use dot notation ("api.base_url") and map onto TOML tables.
package config

import (
	"strconv"
	"strings"
	"sync"
)

// Table is a concurrency-safe set of dot-notation config values with
// typed getters. TOML decodes integers as int64 and arrays as []any, so
// getters accept those shapes alongside native Go types.
type Table struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{data: make(map[string]any)}
}

// Get retrieves a configuration value by key.
func (t *Table) Get(key string) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	val, ok := t.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (t *Table) GetString(key string) string {
	val, ok := t.Get(key)
	if !ok {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

// GetInt retrieves an integer configuration value.
// Numeric strings are accepted so env overrides can be stored verbatim.
func (t *Table) GetInt(key string) int {
	val, ok := t.Get(key)
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// GetFloat retrieves a floating point configuration value.
func (t *Table) GetFloat(key string) float64 {
	val, ok := t.Get(key)
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// GetBool retrieves a boolean configuration value.
func (t *Table) GetBool(key string) bool {
	val, ok := t.Get(key)
	if !ok {
		return false
	}
	switch v := val.(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	default:
		return false
	}
}

// GetStringSlice retrieves a string slice configuration value.
func (t *Table) GetStringSlice(key string) []string {
	val, ok := t.Get(key)
	if !ok {
		return nil
	}
	switch v := val.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}

// Put stores a value without persisting it.
func (t *Table) Put(key string, value any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data[key] = value
}

// Replace swaps the whole table for data, which must already be flat.
func (t *Table) Replace(data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data = data
}

// Snapshot returns a shallow copy of the flat key/value map.
func (t *Table) Snapshot() map[string]any {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]any, len(t.data))
	for k, v := range t.data {
		out[k] = v
	}
	return out
}

// Flatten converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func Flatten(m map[string]any) map[string]any {
	result := make(map[string]any)
	flattenInto(result, m, "")
	return result
}

func flattenInto(dst, m map[string]any, prefix string) {
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenInto(dst, nested, fullKey)
			continue
		}
		dst[fullKey] = value
	}
}

// Nest is the inverse of Flatten. A key that is both a value and a table
// prefix keeps the table.
func Nest(flat map[string]any) map[string]any {
	root := make(map[string]any)
	for key, value := range flat {
		parts := strings.Split(key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		leaf := parts[len(parts)-1]
		if _, isTable := node[leaf].(map[string]any); isTable {
			continue
		}
		node[leaf] = value
	}
	return root
}
