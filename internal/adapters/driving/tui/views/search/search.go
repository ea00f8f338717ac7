// Package search provides the search view for the TUI: term input,
// filters, accumulated results and the shareable URL.
package search

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/components/filters"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/components/input"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/components/list"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/components/status"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/keymap"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/messages"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/styles"
	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/core/ports/driving"
	"github.com/jorge2985/El-Academico/internal/logger"
)

// ErrNoSearchFactory indicates that no controller factory was provided.
var ErrNoSearchFactory = errors.New("search controller factory is required")

// Focus identifies which part of the view receives keys.
type Focus int

const (
	// FocusTerm routes keys to the search term input.
	FocusTerm Focus = iota
	// FocusFilters routes keys to the focused filter input.
	FocusFilters
	// FocusResults routes keys to the result list.
	FocusResults
)

// View is the search view. Each Open creates a controller of its own;
// Leave closes it. Messages from an earlier controller carry an older
// sequence number and are dropped.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	term      *input.Field
	filters   *filters.Set
	list      *list.DocumentList
	statusbar *status.Bar

	searches   driving.SearchControllerFactory
	controller driving.SearchController
	parent     context.Context
	ctx        context.Context
	cancel     context.CancelFunc
	sub        subscription
	seq        uint64
	seeded     bool

	location string
	focus    Focus
	err      error
	width    int
	height   int
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searches driving.SearchControllerFactory,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		term:      input.NewSearchInput(s),
		filters:   filters.New(s),
		list:      list.NewDocumentList(s),
		statusbar: status.NewBar(s, km),
		searches:  searches,
		parent:    context.Background(),
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the parent context for searches.
func (v *View) WithContext(ctx context.Context) *View {
	v.parent = ctx
	return v
}

// Open closes any previous controller and starts a new one seeded from
// raw, a URL or query string. The term input receives focus.
func (v *View) Open(raw string) tea.Cmd {
	v.Leave()
	v.err = nil
	v.statusbar.Clear()
	v.list.SetDocuments(nil)
	v.term.Reset()
	v.filters.SetValues(nil)
	v.location = raw

	if v.searches == nil {
		v.err = ErrNoSearchFactory
		return nil
	}
	controller, err := v.searches.NewController(raw)
	if err != nil {
		logger.Warn("Cannot open search at %q: %v", raw, err)
		v.err = err
		v.statusbar.SetMessage("Dirección inválida: " + err.Error())
		return nil
	}

	v.controller = controller
	v.ctx, v.cancel = context.WithCancel(v.parent)
	v.seeded = false
	v.sub = controller.Subscribe()

	return tea.Batch(
		v.startCmd(),
		v.waitCmd(v.sub),
		v.statusbar.Init(),
		v.setFocus(FocusTerm),
	)
}

// Leave closes the controller. Its last share URL is kept so the next
// Open can restore it.
func (v *View) Leave() {
	v.seq++
	v.sub = nil
	if v.controller != nil {
		v.location = v.controller.ShareURL()
		v.controller.Close()
		v.controller = nil
	}
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// subscription is the channel the current controller publishes on.
// It is waited on again after each notification.
type subscription = <-chan domain.SearchUIState

func (v *View) startCmd() tea.Cmd {
	seq, ctx, controller := v.seq, v.ctx, v.controller
	return func() tea.Msg {
		return messages.SearchStarted{Seq: seq, Err: controller.Start(ctx)}
	}
}

func (v *View) waitCmd(sub subscription) tea.Cmd {
	seq := v.seq
	return func() tea.Msg {
		state, ok := <-sub
		if !ok {
			return messages.SearchClosed{Seq: seq}
		}
		return messages.SearchStateChanged{Seq: seq, State: state}
	}
}

func (v *View) flushCmd() tea.Cmd {
	ctx, controller := v.ctx, v.controller
	return func() tea.Msg {
		controller.Flush(ctx)
		return nil
	}
}

func (v *View) loadMoreCmd() tea.Cmd {
	seq, ctx, controller := v.seq, v.ctx, v.controller
	return func() tea.Msg {
		return messages.LoadMoreFinished{Seq: seq, Err: controller.LoadMore(ctx)}
	}
}

// Init implements the view lifecycle; Open does the real work.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SearchStateChanged:
		if msg.Seq != v.seq || v.sub == nil {
			return v, nil
		}
		v.applyState(msg.State)
		return v, v.waitCmd(v.sub)

	case messages.SearchStarted:
		if msg.Seq == v.seq && msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			v.err = msg.Err
		}
		return v, nil

	case messages.LoadMoreFinished:
		if msg.Seq == v.seq && msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			v.err = msg.Err
		}
		return v, nil

	case messages.SearchClosed:
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	v.statusbar, cmd = v.statusbar.Update(msg)
	return v, cmd
}

func (v *View) applyState(state domain.SearchUIState) {
	if !v.seeded {
		v.seeded = true
		v.term.SetValue(state.Query.Term)
		v.filters.SetValues(state.Query.Filters())
	}
	v.list.SetDocuments(state.Results)
	v.statusbar.SetState(state)
	if v.controller != nil {
		v.location = v.controller.ShareURL()
		v.statusbar.SetShareURL(v.location)
	}
	if state.LastError == nil {
		v.err = nil
	}
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		v.Leave()
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }

	case keymap.Matches(keyStr, v.keymap.NextField):
		return v, v.cycleFocus(1)

	case keymap.Matches(keyStr, v.keymap.PrevField):
		return v, v.cycleFocus(-1)

	case keymap.Matches(keyStr, v.keymap.LoadMore):
		if v.controller == nil {
			return v, nil
		}
		return v, v.loadMoreCmd()
	}

	if v.controller == nil {
		return v, nil
	}

	switch v.focus {
	case FocusResults:
		return v.handleResultsKey(keyStr)

	case FocusFilters:
		if keymap.Matches(keyStr, v.keymap.Submit) {
			return v, v.flushCmd()
		}
		change, cmd := v.filters.Update(msg)
		if change != nil {
			v.applyFilter(*change)
		}
		return v, cmd

	case FocusTerm:
		if keymap.Matches(keyStr, v.keymap.Submit) {
			return v, v.flushCmd()
		}
		before := v.term.Value()
		var cmd tea.Cmd
		v.term, cmd = v.term.Update(msg)
		if after := v.term.Value(); after != before {
			v.controller.SetTerm(after)
		}
		return v, cmd
	}
	return v, nil
}

// handleResultsKey moves through results. Moving down past the last
// result asks for the next page.
func (v *View) handleResultsKey(keyStr string) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.list.AtEnd() {
			state := v.controller.State()
			if state.HasMore && !state.IsLoading {
				return v, v.loadMoreCmd()
			}
			return v, nil
		}
		v.list.MoveDown()
	}
	return v, nil
}

// applyFilter forwards a filter edit. Dates are only sent once they are
// complete; until then the status bar says why the search is on hold.
func (v *View) applyFilter(change filters.Change) {
	err := v.controller.SetFilters(map[string]string{change.Key: change.Value})
	switch {
	case err == nil:
		v.statusbar.SetMessage("")
	case errors.Is(err, domain.ErrInvalidInput):
		v.statusbar.SetMessage(filterHint(change.Key))
	default:
		v.err = err
	}
}

func filterHint(key string) string {
	switch key {
	case domain.ParamFromDate, domain.ParamToDate:
		return "Fecha incompleta o rango inválido (AAAA-MM-DD)"
	default:
		return "Filtro inválido"
	}
}

// cycleFocus moves through term, each filter and the results.
func (v *View) cycleFocus(step int) tea.Cmd {
	positions := 2 + v.filters.Len()
	current := 0
	switch v.focus {
	case FocusTerm:
		current = 0
	case FocusFilters:
		current = 1 + v.filters.Focused()
	case FocusResults:
		current = positions - 1
	}
	next := ((current+step)%positions + positions) % positions

	switch {
	case next == 0:
		return v.setFocus(FocusTerm)
	case next == positions-1:
		return v.setFocus(FocusResults)
	default:
		v.focus = FocusFilters
		v.term.Blur()
		return v.filters.Focus(next - 1)
	}
}

func (v *View) setFocus(f Focus) tea.Cmd {
	v.focus = f
	v.filters.Blur()
	switch f {
	case FocusTerm:
		return v.term.Focus()
	case FocusFilters:
		v.term.Blur()
		return v.filters.Focus(0)
	case FocusResults:
		v.term.Blur()
	}
	return nil
}

// View renders the search view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Buscar documentos"))
	b.WriteString("\n\n")
	b.WriteString(v.term.View())
	b.WriteString("\n\n")
	b.WriteString(v.filters.View())
	b.WriteString("\n\n")

	if v.err != nil && v.controller == nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.statusbar.View())

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	v.term.SetWidth(width)
	v.filters.SetWidth(width / 2)
	v.statusbar.SetWidth(width)

	// title, term, filters and status bar
	chrome := 2 + 2 + v.filters.Len() + 2 + 4
	listHeight := height - chrome
	if listHeight < 2 {
		listHeight = 2
	}
	v.list.SetDimensions(width, listHeight)
}

// Location returns the last known shareable address, or the address the
// view was opened with.
func (v *View) Location() string {
	return v.location
}

// State returns the controller state, or a zero state when closed.
func (v *View) State() domain.SearchUIState {
	if v.controller == nil {
		return domain.SearchUIState{}
	}
	return v.controller.State()
}

// Focus returns the focused part of the view.
func (v *View) Focus() Focus {
	return v.focus
}

// Term returns the term input value.
func (v *View) Term() string {
	return v.term.Value()
}

// Documents returns the displayed documents.
func (v *View) Documents() []domain.DocumentSummary {
	return v.list.Documents()
}

// StatusMessage returns the status bar message, if any.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Active reports whether a controller is open.
func (v *View) Active() bool {
	return v.controller != nil
}
