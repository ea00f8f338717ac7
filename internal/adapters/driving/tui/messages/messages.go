// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/jorge2985/El-Academico/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewLanding shows recent documents, recent posts and categories.
	ViewLanding
	// ViewSearch is the search input, filters and results view.
	ViewSearch
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewLanding:
		return "landing"
	case ViewSearch:
		return "search"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// LandingLoaded carries a settled landing load. Seq identifies the load
// that produced it so results of abandoned loads can be dropped.
type LandingLoaded struct {
	Seq  uint64
	View domain.LandingView
}

// CategorySelected opens the search view filtered by a category.
type CategorySelected struct {
	Category string
}

// SearchStarted carries the outcome of the controller's initial search.
type SearchStarted struct {
	Seq uint64
	Err error
}

// SearchStateChanged carries a controller state notification.
type SearchStateChanged struct {
	Seq   uint64
	State domain.SearchUIState
}

// SearchClosed signals the controller's notification channel closed.
type SearchClosed struct {
	Seq uint64
}

// LoadMoreFinished carries the outcome of a load-more request.
type LoadMoreFinished struct {
	Seq uint64
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
