package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [term]", searchCmd.Use)
	assert.Equal(t, "Search portal documents", searchCmd.Short)
}

func TestSearchCmd_Flags(t *testing.T) {
	for _, name := range []string{"category", "university", "from", "to", "page", "url", "json"} {
		assert.NotNil(t, searchCmd.Flags().Lookup(name), name)
	}
}

func TestSearchCmd_TooManyArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "search", "a", "b")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg(s)")
}

func TestSearchCmd_ExecutesWithTerm(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "search", "salud")

	require.NoError(t, err)
	assert.Contains(t, out, "Results:")
	assert.Contains(t, out, "Salud mental en estudiantes universitarios")
	assert.Contains(t, out, "Page 1/1")
	assert.Contains(t, out, "URL: "+testPublicURL+"/search?page=1&query=salud")
}

func TestSearchCmd_NoResults(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "search", "zzzz")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestSearchCmd_LoadsUpToPage(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "search", "--page", "2", "--json")

	require.NoError(t, err)
	var got searchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Documents, 2*domain.DefaultPageSize)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 3, got.TotalPages)
	assert.True(t, got.HasMore)
	assert.Contains(t, got.URL, "page=2")
}

func TestSearchCmd_Filters(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "search", "--category", "Derecho", "--from", "2024-01-01", "--json")

	require.NoError(t, err)
	var got searchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got.Documents)
	for _, d := range got.Documents {
		assert.Equal(t, "Derecho", d.Category)
		assert.GreaterOrEqual(t, d.PublishedAt, "2024-01-01")
	}
	assert.Contains(t, got.URL, "category=Derecho")
}

func TestSearchCmd_InvalidDate(t *testing.T) {
	catalogue, cleanup := setupTestServices()
	defer cleanup()
	catalogue.FailWith(domain.ErrPortalUnavailable)

	_, err := execute(t, "search", "--from", "2024-1")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchCmd_RestoresURL(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "search", "--url", "https://otro.portal/search?query=derecho&page=1", "--json")

	require.NoError(t, err)
	var got searchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got.Documents)
	assert.Contains(t, got.URL, "https://otro.portal/search?")
	assert.Contains(t, got.URL, "query=derecho")
}

func TestSearchCmd_PortalFailure(t *testing.T) {
	catalogue, cleanup := setupTestServices()
	defer cleanup()
	catalogue.FailWith(domain.ErrPortalUnavailable)

	_, err := execute(t, "search", "redes")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPortalUnavailable)
	assert.Contains(t, err.Error(), "search failed")
}

func TestSeedLocation(t *testing.T) {
	term := func(s string) *string { return &s }

	tests := []struct {
		name    string
		rawURL  string
		term    *string
		filters map[string]string
		page    int
		want    string
	}{
		{"empty", "", nil, nil, 0, ""},
		{"term only", "", term("redes"), nil, 0, "query=redes"},
		{"query string kept", "?category=Derecho", nil, nil, 0, "category=Derecho"},
		{"term overrides url", "query=a&page=3", term("b"), nil, 0, "page=3&query=b"},
		{"empty term clears", "query=a", term(""), nil, 0, ""},
		{"filter cleared", "category=Derecho", nil, map[string]string{"category": ""}, 0, ""},
		{"page", "", nil, nil, 2, "page=2"},
		{"full url keeps host", "https://x.test/search?query=a", nil, nil, 2, "https://x.test/search?page=2&query=a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := seedLocation(tt.rawURL, tt.term, tt.filters, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeedLocation_Invalid(t *testing.T) {
	_, err := seedLocation("%zz", nil, nil, 0)
	assert.Error(t, err)

	_, err = seedLocation("fromDate=2024-05-01", nil, map[string]string{"toDate": "2024-01-01"}, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
