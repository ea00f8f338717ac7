// Package filters provides the search filter inputs for the TUI.
package filters

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/components/input"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/styles"
	"github.com/jorge2985/El-Academico/internal/core/domain"
)

var labels = map[string]struct{ label, placeholder string }{
	domain.ParamCategory:   {"Categoría", "Ciencias, Derecho..."},
	domain.ParamUniversity: {"Universidad", "Universidad de..."},
	domain.ParamFromDate:   {"Desde", "AAAA-MM-DD"},
	domain.ParamToDate:     {"Hasta", "AAAA-MM-DD"},
}

// Change is a filter edit produced by typing.
type Change struct {
	Key   string
	Value string
}

// Set holds one input per filter key, at most one of them focused.
type Set struct {
	keys    []string
	fields  map[string]*input.Field
	focused int // -1 when no filter has focus
}

// New creates the filter inputs in domain.FilterKeys order.
func New(s *styles.Styles) *Set {
	set := &Set{
		keys:    append([]string(nil), domain.FilterKeys...),
		fields:  make(map[string]*input.Field, len(domain.FilterKeys)),
		focused: -1,
	}
	for _, key := range set.keys {
		l := labels[key]
		set.fields[key] = input.NewField(s, l.label, l.placeholder)
	}
	return set
}

// Keys returns the filter keys in display order.
func (s *Set) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Update forwards msg to the focused field and reports the edit, if any.
func (s *Set) Update(msg tea.Msg) (*Change, tea.Cmd) {
	if s.focused < 0 {
		return nil, nil
	}
	key := s.keys[s.focused]
	field := s.fields[key]

	before := field.Value()
	field, cmd := field.Update(msg)
	s.fields[key] = field
	if after := field.Value(); after != before {
		return &Change{Key: key, Value: after}, cmd
	}
	return nil, cmd
}

// View renders the fields one per line.
func (s *Set) View() string {
	lines := make([]string, 0, len(s.keys))
	for _, key := range s.keys {
		lines = append(lines, s.fields[key].View())
	}
	return strings.Join(lines, "\n")
}

// Focus focuses the i-th field and blurs the rest. Out of range blurs all.
func (s *Set) Focus(i int) tea.Cmd {
	s.Blur()
	if i < 0 || i >= len(s.keys) {
		return nil
	}
	s.focused = i
	return s.fields[s.keys[i]].Focus()
}

// Blur removes focus from every field.
func (s *Set) Blur() {
	for _, f := range s.fields {
		f.Blur()
	}
	s.focused = -1
}

// Focused returns the focused index, or -1.
func (s *Set) Focused() int {
	return s.focused
}

// FocusedKey returns the key of the focused field, or "".
func (s *Set) FocusedKey() string {
	if s.focused < 0 {
		return ""
	}
	return s.keys[s.focused]
}

// Len returns the number of fields.
func (s *Set) Len() int {
	return len(s.keys)
}

// Value returns a single field value.
func (s *Set) Value(key string) string {
	if f, ok := s.fields[key]; ok {
		return f.Value()
	}
	return ""
}

// SetValues replaces the field contents, e.g. from a restored query.
// Keys absent from values are cleared.
func (s *Set) SetValues(values map[string]string) {
	for _, key := range s.keys {
		s.fields[key].SetValue(values[key])
	}
}

// SetWidth sets the width of every field.
func (s *Set) SetWidth(width int) {
	for _, f := range s.fields {
		f.SetWidth(width)
	}
}
