// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/styles"
	"github.com/jorge2985/El-Academico/internal/core/domain"
)

// DocumentList displays document summaries in a navigable list.
type DocumentList struct {
	docs     []domain.DocumentSummary
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewDocumentList creates a new document list component.
func NewDocumentList(s *styles.Styles) *DocumentList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &DocumentList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *DocumentList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *DocumentList) Update(msg tea.Msg) (*DocumentList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *DocumentList) View() string {
	if len(l.docs) == 0 {
		return l.styles.Muted.Render("Sin resultados")
	}

	// each entry renders as two lines
	visible := (l.height - 1) / 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.docs) {
		end = len(l.docs)
	}

	lines := make([]string, 0, (end-start)*2)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderDocument(i, &l.docs[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *DocumentList) renderDocument(index int, doc *domain.DocumentSummary) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	maxTitle := l.width - 16
	if maxTitle < 10 {
		maxTitle = 10
	}
	title := truncate(doc.DisplayTitle(), maxTitle)

	date := ""
	if !doc.PublishedAt.IsZero() {
		date = doc.PublishedAt.Format(domain.DateLayout)
	}

	var titleLine string
	if index == l.selected {
		titleLine = l.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitle, title, date))
	} else {
		titleLine = l.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitle, title)) +
			l.styles.Muted.Render(date)
	}

	meta := make([]string, 0, 3)
	if len(doc.Authors) > 0 {
		meta = append(meta, strings.Join(doc.Authors, ", "))
	}
	if doc.University != "" {
		meta = append(meta, doc.University)
	}
	if doc.Category != "" {
		meta = append(meta, doc.Category)
	}
	metaLine := l.styles.Muted.Render("    " + truncate(strings.Join(meta, " · "), l.width-6))

	return titleLine + "\n" + metaLine
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max < 4 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// SetDocuments replaces the list contents. The selection is kept when the
// new list extends the old one, which is what load-more produces.
func (l *DocumentList) SetDocuments(docs []domain.DocumentSummary) {
	extends := len(docs) >= len(l.docs) && len(l.docs) > 0 && docs[0].ID == l.docs[0].ID
	l.docs = docs
	if !extends || l.selected >= len(docs) {
		l.selected = 0
	}
}

// Documents returns the current documents.
func (l *DocumentList) Documents() []domain.DocumentSummary {
	return l.docs
}

// Selected returns the index of the selected document.
func (l *DocumentList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *DocumentList) SetSelected(index int) {
	if index >= 0 && index < len(l.docs) {
		l.selected = index
	}
}

// SelectedDocument returns the selected document, or nil if none.
func (l *DocumentList) SelectedDocument() *domain.DocumentSummary {
	if l.selected < 0 || l.selected >= len(l.docs) {
		return nil
	}
	return &l.docs[l.selected]
}

// MoveUp moves selection up.
func (l *DocumentList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *DocumentList) MoveDown() {
	if l.selected < len(l.docs)-1 {
		l.selected++
	}
}

// AtEnd reports whether the last document is selected.
func (l *DocumentList) AtEnd() bool {
	return len(l.docs) > 0 && l.selected == len(l.docs)-1
}

// SetDimensions sets the component dimensions.
func (l *DocumentList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of documents.
func (l *DocumentList) Count() int {
	return len(l.docs)
}

// IsEmpty returns whether the list is empty.
func (l *DocumentList) IsEmpty() bool {
	return len(l.docs) == 0
}
