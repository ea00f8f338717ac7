package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

func TestBar_Ready(t *testing.T) {
	b := NewBar(nil, nil)

	assert.Contains(t, b.View(), "Listo")
	assert.NotContains(t, b.View(), "Compartir")
}

func TestBar_Phases(t *testing.T) {
	b := NewBar(nil, nil)

	b.SetState(domain.SearchUIState{Phase: domain.PhaseLoadingNewSearch, IsLoading: true})
	assert.Contains(t, b.View(), "Buscando")

	b.SetState(domain.SearchUIState{Phase: domain.PhaseLoadingMore, IsLoading: true})
	assert.Contains(t, b.View(), "Cargando más")
}

func TestBar_Results(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(160)
	q := domain.NewSearchQuery(12)
	q.Page = 2

	b.SetState(domain.SearchUIState{
		Query:      q,
		Results:    make([]domain.DocumentSummary, 24),
		HasMore:    true,
		TotalPages: 3,
	})
	b.SetShareURL("http://localhost:3000/search?page=2")

	view := b.View()
	assert.Contains(t, view, "24 resultados")
	assert.Contains(t, view, "página 2/3")
	assert.Contains(t, view, "hay más")
	assert.Contains(t, view, "http://localhost:3000/search?page=2")
	assert.Contains(t, view, "cargar más")
}

func TestBar_ErrorAndMessage(t *testing.T) {
	b := NewBar(nil, nil)
	b.SetWidth(160)

	b.SetState(domain.SearchUIState{LastError: errors.New("sin conexión")})
	assert.Contains(t, b.View(), "Error: sin conexión")

	b.SetMessage("fecha incompleta")
	assert.Contains(t, b.View(), "fecha incompleta")
	assert.Equal(t, "fecha incompleta", b.Message())

	b.Clear()
	assert.Empty(t, b.Message())
	assert.Empty(t, b.ShareURL())
	assert.Equal(t, domain.SearchUIState{}, b.State())
}
