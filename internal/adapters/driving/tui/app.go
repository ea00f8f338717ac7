package tui

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/keymap"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/messages"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/styles"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/views/landing"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/views/menu"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/views/search"
	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView    *menu.View
	landingView *landing.View
	searchView  *search.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s, km),
		landingView: landing.NewView(s, km, ports.Landing),
		searchView:  search.NewView(s, km, ports.Searches),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.landingView.WithContext(ctx)
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// With a starting location the app opens straight into the search view.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("El Académico"),
	}
	if a.ports.Location != "" {
		a.currentView = messages.ViewSearch
		cmds = append(cmds, a.searchView.Open(a.ports.Location))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, a.quit()
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewLanding:
			a.landingView, cmd = a.landingView.Update(msg)
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewHelp:
			if keymap.Matches(msg.String(), a.keymap.Back) {
				a.currentView = messages.ViewMenu
			}
		}
		return a, cmd

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.CategorySelected:
		logger.Debug("Category selected: %s", msg.Category)
		a.landingView.Leave()
		a.currentView = messages.ViewSearch
		raw := url.Values{domain.ParamCategory: {msg.Category}}.Encode()
		return a, a.searchView.Open(raw)

	case messages.LandingLoaded:
		a.landingView, cmd = a.landingView.Update(msg)
		return a, cmd

	case messages.SearchStarted, messages.SearchStateChanged,
		messages.SearchClosed, messages.LoadMoreFinished:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		logger.Error("tui: %v", msg.Err)
		return a, nil

	case messages.Quit:
		return a, a.quit()
	}

	// Notifications and spinner ticks belong to an open search even
	// when they arrive through its private message types.
	if a.searchView.Active() {
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd
	}
	if a.currentView == messages.ViewMenu {
		a.menuView, cmd = a.menuView.Update(msg)
	}
	return a, cmd
}

// switchTo makes view current and starts whatever it loads on entry.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	previous := a.currentView
	a.currentView = view

	if previous == messages.ViewLanding && view != messages.ViewLanding {
		a.landingView.Leave()
	}
	if previous == messages.ViewSearch && view != messages.ViewSearch {
		a.searchView.Leave()
	}

	switch view {
	case messages.ViewLanding:
		return a.landingView.Init()
	case messages.ViewSearch:
		return a.searchView.Open(a.searchView.Location())
	case messages.ViewMenu, messages.ViewHelp:
	}
	return nil
}

// quit closes open controllers and in-flight loads before exiting.
func (a *App) quit() tea.Cmd {
	a.landingView.Leave()
	a.searchView.Leave()
	return tea.Quit
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Iniciando..."
	}

	switch a.currentView {
	case messages.ViewLanding:
		return a.landingView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view from the key map.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Ayuda"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, kb := range group {
			h := kb.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Muted.Render("En la búsqueda, bajar más allá del último resultado carga la página siguiente."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] volver al menú"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	a.landingView.Leave()
	a.searchView.Leave()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SearchView returns the search view.
func (a *App) SearchView() *search.View {
	return a.searchView
}

// LandingView returns the landing view.
func (a *App) LandingView() *landing.View {
	return a.landingView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.landingView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
}
