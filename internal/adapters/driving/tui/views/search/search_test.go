package search

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge2985/El-Academico/internal/adapters/driven/location"
	"github.com/jorge2985/El-Academico/internal/adapters/driven/portal/memory"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/messages"
	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
	"github.com/jorge2985/El-Academico/internal/core/ports/driving"
	"github.com/jorge2985/El-Academico/internal/core/services"
	"github.com/jorge2985/El-Academico/internal/testutil"
)

const publicURL = "https://portal.test"

func newTestView(t *testing.T) (*View, *testutil.FakeClock) {
	t.Helper()
	clock := testutil.NewFakeClock()
	factory := services.NewSearchControllerFactory(
		memory.NewSeeded(),
		clock,
		func(raw string) (driven.Location, error) { return location.New(publicURL, raw) },
		services.SearchControllerConfig{},
	)
	v := NewView(nil, nil, factory)
	v.SetDimensions(100, 40)
	return v, clock
}

// open opens the view and runs the initial search synchronously.
func open(t *testing.T, v *View, raw string) {
	t.Helper()
	v.Open(raw)
	require.True(t, v.Active())
	require.NoError(t, v.controller.Start(context.Background()))
	deliver(v)
}

// deliver hands the controller's current state to the view the way a
// subscription notification would.
func deliver(v *View) {
	v.Update(messages.SearchStateChanged{Seq: v.seq, State: v.controller.State()})
}

func typeText(v *View, s string) {
	for _, r := range s {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(v *View, k tea.KeyType) tea.Cmd {
	_, cmd := v.Update(tea.KeyMsg{Type: k})
	return cmd
}

func TestOpen_SeedsInputsFromLocation(t *testing.T) {
	v, _ := newTestView(t)

	open(t, v, "?query=redes&category=Ingenier%C3%ADa")

	assert.Equal(t, "redes", v.Term())
	assert.Equal(t, "Ingeniería", v.filters.Value(domain.ParamCategory))
	require.NotEmpty(t, v.Documents())
	for _, d := range v.Documents() {
		assert.Equal(t, "Ingeniería", d.Category)
	}
	assert.Contains(t, v.Location(), "query=redes")
	assert.Contains(t, v.View(), "Compartir:")
}

func TestOpen_RestoresPage(t *testing.T) {
	v, _ := newTestView(t)

	open(t, v, "?page=2")

	assert.Len(t, v.Documents(), 2*domain.DefaultPageSize)
	assert.Equal(t, 2, v.State().Query.Page)
}

func TestOpen_NoFactory(t *testing.T) {
	v := NewView(nil, nil, nil)

	cmd := v.Open("")

	assert.Nil(t, cmd)
	assert.ErrorIs(t, v.Err(), ErrNoSearchFactory)
	assert.False(t, v.Active())
}

func TestOpen_InvalidLocation(t *testing.T) {
	v, _ := newTestView(t)

	cmd := v.Open("%zz")

	assert.Nil(t, cmd)
	assert.Error(t, v.Err())
	assert.Contains(t, v.StatusMessage(), "Dirección inválida")
}

func TestTyping_SubmitFlushesSearch(t *testing.T) {
	v, clock := newTestView(t)
	open(t, v, "")

	typeText(v, "salud")
	assert.Equal(t, 1, clock.Pending())

	cmd := press(v, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	deliver(v)

	assert.Equal(t, 0, clock.Pending())
	require.Len(t, v.Documents(), 1)
	assert.Equal(t, "Salud mental en estudiantes universitarios", v.Documents()[0].Title)
	assert.Contains(t, v.Location(), "query=salud")
}

func TestTyping_DebounceFires(t *testing.T) {
	v, clock := newTestView(t)
	open(t, v, "")

	typeText(v, "derecho")
	clock.Advance(0)
	deliver(v)

	assert.Equal(t, "derecho", v.State().Query.Term)
	assert.Contains(t, v.Location(), "query=derecho")
}

func TestFilters_IncompleteDateIsHeld(t *testing.T) {
	v, clock := newTestView(t)
	open(t, v, "")

	// term -> category -> university -> fromDate
	press(v, tea.KeyTab)
	press(v, tea.KeyTab)
	press(v, tea.KeyTab)
	require.Equal(t, FocusFilters, v.Focus())
	require.Equal(t, domain.ParamFromDate, v.filters.FocusedKey())

	typeText(v, "2024-01")
	assert.Contains(t, v.StatusMessage(), "Fecha incompleta")
	assert.Equal(t, 0, clock.Pending())

	typeText(v, "-01")
	assert.Empty(t, v.StatusMessage())
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(0)
	deliver(v)
	assert.Contains(t, v.Location(), "fromDate=2024-01-01")
	for _, d := range v.Documents() {
		assert.False(t, d.PublishedAt.Before(mustDate(t, "2024-01-01")))
	}
}

func TestFocus_CyclesThroughAllParts(t *testing.T) {
	v, _ := newTestView(t)
	open(t, v, "")

	assert.Equal(t, FocusTerm, v.Focus())
	for i := 0; i < v.filters.Len(); i++ {
		press(v, tea.KeyTab)
		assert.Equal(t, FocusFilters, v.Focus())
		assert.Equal(t, i, v.filters.Focused())
	}
	press(v, tea.KeyTab)
	assert.Equal(t, FocusResults, v.Focus())
	press(v, tea.KeyTab)
	assert.Equal(t, FocusTerm, v.Focus())

	press(v, tea.KeyShiftTab)
	assert.Equal(t, FocusResults, v.Focus())
}

func TestResults_DownAtEndLoadsMore(t *testing.T) {
	v, _ := newTestView(t)
	open(t, v, "")
	require.Len(t, v.Documents(), domain.DefaultPageSize)

	press(v, tea.KeyShiftTab)
	for i := 0; i < domain.DefaultPageSize-1; i++ {
		assert.Nil(t, press(v, tea.KeyDown))
	}
	require.True(t, v.list.AtEnd())

	cmd := press(v, tea.KeyDown)
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, messages.LoadMoreFinished{Seq: v.seq}, msg)
	v.Update(msg)
	deliver(v)

	assert.Len(t, v.Documents(), 2*domain.DefaultPageSize)
	assert.Equal(t, domain.DefaultPageSize-1, v.list.Selected())
	assert.Contains(t, v.Location(), "page=2")
}

func TestLoadMoreKey(t *testing.T) {
	v, _ := newTestView(t)
	open(t, v, "")

	cmd := press(v, tea.KeyCtrlN)
	require.NotNil(t, cmd)
	cmd()
	deliver(v)

	assert.Len(t, v.Documents(), 2*domain.DefaultPageSize)
}

func TestBack_ClosesControllerAndKeepsLocation(t *testing.T) {
	v, _ := newTestView(t)
	open(t, v, "?query=derecho")
	controller := v.controller

	cmd := press(v, tea.KeyEsc)

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
	assert.False(t, v.Active())
	assert.ErrorIs(t, controller.LoadMore(context.Background()), domain.ErrControllerClosed)
	assert.Contains(t, v.Location(), publicURL+"/search?")
	assert.Contains(t, v.Location(), "query=derecho")

	open(t, v, v.Location())
	assert.Equal(t, "derecho", v.Term())
}

func TestStaleNotificationsAreIgnored(t *testing.T) {
	v, _ := newTestView(t)
	open(t, v, "")
	staleSeq := v.seq
	stale := domain.SearchUIState{Results: []domain.DocumentSummary{{ID: "stale"}}}

	open(t, v, "?query=derecho")
	v.Update(messages.SearchStateChanged{Seq: staleSeq, State: stale})
	v.Update(messages.SearchStarted{Seq: staleSeq, Err: errors.New("late failure")})

	assert.NotEqual(t, "stale", v.Documents()[0].ID)
	assert.NoError(t, v.Err())
}

func TestStartErrorIsRecorded(t *testing.T) {
	v, _ := newTestView(t)
	v.Open("")

	v.Update(messages.SearchStarted{Seq: v.seq, Err: errors.New("portal down")})
	assert.EqualError(t, v.Err(), "portal down")

	v.Update(messages.SearchStarted{Seq: v.seq, Err: context.Canceled})
	assert.EqualError(t, v.Err(), "portal down")
}

func TestWaitCmd_ReportsClosedSubscription(t *testing.T) {
	v, _ := newTestView(t)
	v.Open("")
	sub := v.controller.Subscribe()
	cmd := v.waitCmd(sub)
	seq := v.seq

	v.Leave()

	assert.Equal(t, messages.SearchClosed{Seq: seq}, cmd())
}

func TestWaitCmd_RelaysStateAndKeepsListening(t *testing.T) {
	v, _ := newTestView(t)
	v.Open("")
	sub := v.controller.Subscribe()
	require.NoError(t, v.controller.Start(context.Background()))

	msg := v.waitCmd(sub)()
	changed, ok := msg.(messages.SearchStateChanged)
	require.True(t, ok)
	assert.Equal(t, v.seq, changed.Seq)

	_, next := v.Update(changed)
	assert.NotNil(t, next)
	assert.Len(t, v.Documents(), domain.DefaultPageSize)
}

func TestStaleNotificationStopsListening(t *testing.T) {
	v, _ := newTestView(t)
	open(t, v, "")
	staleSeq := v.seq
	v.Leave()

	_, next := v.Update(messages.SearchStateChanged{Seq: staleSeq})

	assert.Nil(t, next)
}

func TestTypingBeforeStartIsKept(t *testing.T) {
	v, clock := newTestView(t)
	v.Open("?category=Derecho")

	typeText(v, "derecho")
	require.NoError(t, v.controller.Start(context.Background()))
	deliver(v)

	assert.Equal(t, 0, clock.Pending())
	assert.Equal(t, "derecho", v.Term())
	assert.Equal(t, "Derecho", v.filters.Value(domain.ParamCategory))
	st := v.State()
	assert.Equal(t, "derecho", st.Query.Term)
	assert.Equal(t, "Derecho", st.Query.Category)
	require.NotEmpty(t, v.Documents())
	for _, d := range v.Documents() {
		assert.Equal(t, "Derecho", d.Category)
	}
	assert.Contains(t, v.Location(), "query=derecho")
}

// Ensure the factory satisfies what the view expects.
var _ driving.SearchControllerFactory = (*services.SearchControllerFactory)(nil)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}
