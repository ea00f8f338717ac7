// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/keymap"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/styles"
	"github.com/jorge2985/El-Academico/internal/core/domain"
)

// Bar displays the search phase, page cursor, the shareable URL and
// keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	spinner spinner.Model

	state    domain.SearchUIState
	shareURL string
	message  string
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = s.Warning

	return &Bar{
		styles:  s,
		keymap:  km,
		spinner: sp,
		width:   80,
	}
}

// Init starts the spinner.
func (b *Bar) Init() tea.Cmd {
	return b.spinner.Tick
}

// Update advances the spinner while a fetch is in flight.
func (b *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd
	}
	return b, nil
}

// View renders two lines: status and hints, then the share URL.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}
	line := b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", padding) + right)

	if b.shareURL == "" {
		return line
	}
	return line + "\n" + b.styles.Muted.Render("Compartir: ") + b.styles.Link.Render(b.shareURL)
}

func (b *Bar) renderLeft() string {
	if b.message != "" {
		return b.styles.Warning.Render(b.message)
	}
	switch b.state.Phase {
	case domain.PhaseLoadingNewSearch:
		return b.spinner.View() + " " + b.styles.Normal.Render("Buscando...")
	case domain.PhaseLoadingMore:
		return b.spinner.View() + " " + b.styles.Normal.Render("Cargando más...")
	case domain.PhaseIdle:
	}

	if b.state.LastError != nil {
		return b.styles.Error.Render("Error: " + b.state.LastError.Error())
	}
	if len(b.state.Results) == 0 {
		return b.styles.Muted.Render("Listo")
	}

	more := ""
	if b.state.HasMore {
		more = " · hay más"
	}
	return b.styles.Normal.Render(fmt.Sprintf("%d resultados · página %d/%d%s",
		len(b.state.Results), b.state.Query.Page, b.state.TotalPages, more))
}

func (b *Bar) renderRight() string {
	bindings := b.keymap.ShortHelp()
	if len(b.state.Results) > 0 || b.state.IsLoading {
		bindings = b.keymap.SearchHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		hints = append(hints, hint(kb))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

func hint(kb key.Binding) string {
	h := kb.Help()
	return fmt.Sprintf("%s: %s", h.Key, h.Desc)
}

// SetState records the controller state to display.
func (b *Bar) SetState(state domain.SearchUIState) {
	b.state = state
}

// State returns the displayed controller state.
func (b *Bar) State() domain.SearchUIState {
	return b.state
}

// SetShareURL sets the shareable URL line.
func (b *Bar) SetShareURL(u string) {
	b.shareURL = u
}

// ShareURL returns the shareable URL line.
func (b *Bar) ShareURL() string {
	return b.shareURL
}

// SetMessage sets a transient message that replaces the status text.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Clear resets the status bar.
func (b *Bar) Clear() {
	b.state = domain.SearchUIState{}
	b.shareURL = ""
	b.message = ""
}
