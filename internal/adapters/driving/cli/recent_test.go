package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

type failingLanding struct{ err error }

func (f failingLanding) Load(context.Context) domain.LandingView {
	return domain.LandingView{State: domain.LandingError, Err: f.err}
}

func TestRecentCmd_Text(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "recent")

	require.NoError(t, err)
	assert.Contains(t, out, "Recent documents:")
	assert.Contains(t, out, "Salud mental en estudiantes universitarios")
	assert.Contains(t, out, "Blog:")
	assert.Contains(t, out, "Cómo citar correctamente en tu tesis")
	assert.Contains(t, out, "Categories:")
	assert.Contains(t, out, "  - Derecho")
}

func TestRecentCmd_JSON(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "recent", "--json")

	require.NoError(t, err)
	var got recentOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got.Documents)
	assert.Equal(t, "doc-20", got.Documents[0].ID)
	require.NotEmpty(t, got.Posts)
	assert.Equal(t, "post-1", got.Posts[0].ID)
	assert.Equal(t, []string{"Ciencias", "Derecho"}, got.Categories)
}

func TestRecentCmd_Error(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	services.Landing = failingLanding{err: errors.New("recent posts: timeout")}

	_, err := execute(t, "recent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recent posts: timeout")
}

func TestRecentCmd_PortalDown(t *testing.T) {
	catalogue, cleanup := setupTestServices()
	defer cleanup()
	catalogue.FailWith(domain.ErrPortalUnavailable)

	_, err := execute(t, "recent")

	assert.Error(t, err)
}
