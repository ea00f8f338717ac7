package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("search.page_size", 24))
	require.NoError(t, store.Set("portal.public_url", "https://academico.example"))

	assert.Equal(t, 24, store.GetInt("search.page_size"))
	assert.Equal(t, "https://academico.example", store.GetString("portal.public_url"))
}

func TestConfigStore_NoOps(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}
