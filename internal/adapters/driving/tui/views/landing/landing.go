// Package landing provides the home view: recent documents, recent blog
// posts and category shortcuts.
package landing

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/keymap"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/messages"
	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui/styles"
	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/core/ports/driving"
)

// View is the landing view. Each Init starts a fresh load bound to its
// own context; Leave cancels it and late results are dropped.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.LandingService

	parent context.Context
	cancel context.CancelFunc
	seq    uint64

	data     domain.LandingView
	selected int
	width    int
	height   int
}

// NewView creates a new landing view.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.LandingService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:  s,
		keymap:  km,
		service: service,
		parent:  context.Background(),
		data:    domain.LandingView{State: domain.LandingLoading},
		width:   80,
		height:  24,
	}
}

// WithContext sets the parent context for loads.
func (v *View) WithContext(ctx context.Context) *View {
	v.parent = ctx
	return v
}

// Init cancels any running load and starts a new one.
func (v *View) Init() tea.Cmd {
	v.Leave()

	ctx, cancel := context.WithCancel(v.parent)
	v.cancel = cancel
	v.seq++
	seq := v.seq
	v.data = domain.LandingView{State: domain.LandingLoading}
	v.selected = 0

	service := v.service
	return func() tea.Msg {
		return messages.LandingLoaded{Seq: seq, View: service.Load(ctx)}
	}
}

// Leave cancels an in-flight load.
func (v *View) Leave() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// Update handles messages for the landing view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.LandingLoaded:
		if msg.Seq != v.seq || msg.View.Cancelled {
			return v, nil
		}
		v.data = msg.View
		v.selected = 0
		if v.cancel != nil {
			v.cancel()
			v.cancel = nil
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()
	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		v.Leave()
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }

	case keymap.Matches(keyStr, v.keymap.Reload):
		if v.data.State == domain.LandingError {
			return v, v.Init()
		}

	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < len(v.data.Categories)-1 {
			v.selected++
		}

	case keymap.Matches(keyStr, v.keymap.Select):
		if v.data.State == domain.LandingReady && v.selected < len(v.data.Categories) {
			category := v.data.Categories[v.selected]
			return v, func() tea.Msg { return messages.CategorySelected{Category: category} }
		}
	}
	return v, nil
}

// View renders the landing view.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("El Académico"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Repositorio de producción académica"))
	b.WriteString("\n\n")

	switch v.data.State {
	case domain.LandingLoading:
		b.WriteString(v.styles.Muted.Render("Cargando novedades..."))
	case domain.LandingError:
		b.WriteString(v.styles.Error.Render("No se pudo cargar el inicio: " + v.data.ErrorMessage()))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[r] Reintentar  [esc] Volver"))
		return b.String()
	case domain.LandingReady:
		b.WriteString(v.renderReady())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navegar  [enter] Buscar categoría  [esc] Volver"))
	return b.String()
}

func (v *View) renderReady() string {
	var docs strings.Builder
	docs.WriteString(v.styles.Subtitle.Render("Documentos recientes"))
	if len(v.data.Documents) == 0 {
		docs.WriteString("\n" + v.styles.Muted.Render("Todavía no hay documentos."))
	}
	for _, d := range v.data.Documents {
		line := d.DisplayTitle()
		if d.University != "" {
			line += v.styles.Muted.Render(" · " + d.University)
		}
		docs.WriteString("\n• " + line)
	}

	var posts strings.Builder
	posts.WriteString(v.styles.Subtitle.Render("Blog"))
	if len(v.data.Posts) == 0 {
		posts.WriteString("\n" + v.styles.Muted.Render("Todavía no hay publicaciones."))
	}
	for _, p := range v.data.Posts {
		line := p.DisplayTitle()
		if p.Author != "" {
			line += v.styles.Muted.Render(" · " + p.Author)
		}
		posts.WriteString("\n• " + line)
	}

	var cats strings.Builder
	cats.WriteString(v.styles.Subtitle.Render("Categorías"))
	for i, c := range v.data.Categories {
		if i == v.selected {
			cats.WriteString("\n" + v.styles.Selected.Render("> "+c))
		} else {
			cats.WriteString("\n  " + c)
		}
	}

	return strings.Join([]string{
		v.styles.Section.Render(docs.String()),
		v.styles.Section.Render(posts.String()),
		v.styles.Section.Render(cats.String()),
	}, "\n\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Data returns the displayed landing data.
func (v *View) Data() domain.LandingView {
	return v.data
}

// Selected returns the selected category index.
func (v *View) Selected() int {
	return v.selected
}
