package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
	assert.Contains(t, km.LoadMore.Keys(), "ctrl+n")
	assert.Contains(t, km.NextField.Keys(), "tab")
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("up", km.Up))
	assert.False(t, Matches("x", km.Up))
	assert.True(t, Matches("shift+tab", km.PrevField))
}

func TestHelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
	assert.Len(t, km.SearchHelp(), 4)
	full := km.FullHelp()
	require.Len(t, full, 3)
	for _, group := range full {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Desc)
		}
	}
}
