package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/messages"
	"github.com/jorge2985/El-Academico/internal/core/domain"
)

func newTestPorts() *Ports {
	return NewPorts(newTestFactory(), &MockLandingService{})
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	app.SetDimensions(100, 40)
	return app
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Landing: &MockLandingService{}})

	assert.ErrorIs(t, err, ErrMissingSearchController)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.NotNil(t, app.Init())
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_Init_WithLocationOpensSearch(t *testing.T) {
	ports := newTestPorts()
	ports.Location = "?query=derecho"
	app, _ := NewApp(ports)

	app.Init()

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.True(t, app.SearchView().Active())
	app.quit()
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	_, cmd := app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Equal(t, 120, app.width)
	assert.Equal(t, 30, app.height)
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts())

	assert.Equal(t, "Iniciando...", app.View())
}

func TestApp_View_Menu(t *testing.T) {
	app := newTestApp(t)

	out := app.View()

	assert.Contains(t, out, "Inicio")
	assert.Contains(t, out, "Buscar")
}

func TestApp_Update_CtrlCQuitsAndClosesSearch(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewSearch})
	require.True(t, app.SearchView().Active())

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, app.SearchView().Active())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Update_ViewChanged_ToLanding(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewLanding})

	assert.Equal(t, messages.ViewLanding, app.CurrentView())
	require.NotNil(t, cmd)

	app.Update(cmd())
	assert.Equal(t, domain.LandingReady, app.LandingView().Data().State)
	assert.Contains(t, app.View(), "Medicina")
}

func TestApp_Update_ViewChanged_ToSearch(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.ViewChanged{View: messages.ViewSearch})

	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.NotNil(t, cmd)
	assert.True(t, app.SearchView().Active())
	assert.Contains(t, app.View(), "Buscar documentos")
}

func TestApp_Update_LeavingSearchClosesController(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewSearch})

	app.Update(messages.ViewChanged{View: messages.ViewMenu})

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.SearchView().Active())
}

func TestApp_Update_CategorySelectedOpensFilteredSearch(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewLanding})

	_, cmd := app.Update(messages.CategorySelected{Category: "Medicina"})

	assert.NotNil(t, cmd)
	assert.Equal(t, messages.ViewSearch, app.CurrentView())
	assert.Equal(t, "category=Medicina", app.SearchView().Location())
}

func TestApp_Update_HelpAndBack(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Ayuda")
	assert.Contains(t, app.View(), "ctrl+n")

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_Update_MenuKeysAreForwarded(t *testing.T) {
	app := newTestApp(t)

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewSearch}, cmd())
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)
	testErr := errors.New("boom")

	app.Update(messages.ErrorOccurred{Err: testErr})

	assert.Equal(t, testErr, app.Err())
}

func TestApp_Update_SearchMessagesReachSearchView(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.ViewChanged{View: messages.ViewSearch})
	state := domain.SearchUIState{Results: []domain.DocumentSummary{{ID: "doc-99", Title: "Nuevo"}}}

	// Seq 0 never belongs to an open view.
	app.Update(messages.SearchStateChanged{Seq: 0, State: state})

	assert.Empty(t, app.SearchView().Documents())
	app.quit()
}
