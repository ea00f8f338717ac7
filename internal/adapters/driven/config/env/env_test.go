package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ACADEMICO_API_URL", "ACADEMICO_PUBLIC_URL", "ACADEMICO_API_TIMEOUT", "ACADEMICO_OFFLINE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ACADEMICO_API_URL", "https://api.example/api/")
	t.Setenv("ACADEMICO_OFFLINE", "true")

	o, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "https://api.example/api/", o.APIURL)
	assert.Equal(t, "true", o.Offline)
	assert.Empty(t, o.PublicURL)
}

func TestLoad_DotenvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ACADEMICO_PUBLIC_URL=https://academico.example\nACADEMICO_API_TIMEOUT=3s\n"), 0600))
	t.Cleanup(func() {
		_ = os.Unsetenv("ACADEMICO_PUBLIC_URL")
		_ = os.Unsetenv("ACADEMICO_API_TIMEOUT")
	})

	o, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://academico.example", o.PublicURL)
	assert.Equal(t, "3s", o.APITimeout)
}

func TestLoad_ProcessEnvironmentWinsOverDotenv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ACADEMICO_API_URL", "https://from-env.example")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ACADEMICO_API_URL=https://from-file.example\n"), 0600))

	o, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example", o.APIURL)
}

func TestApply(t *testing.T) {
	settings := domain.DefaultAppSettings()
	o := &Overrides{
		APIURL:     "https://api.example/api/",
		PublicURL:  "https://academico.example",
		APITimeout: "2s",
		Offline:    "1",
	}

	require.NoError(t, o.Apply(&settings))

	assert.Equal(t, "https://api.example/api", settings.API.BaseURL)
	assert.Equal(t, "https://academico.example", settings.Portal.PublicURL)
	assert.Equal(t, 2*time.Second, settings.API.Timeout)
	assert.True(t, settings.Offline)
}

func TestApply_EmptyOverridesKeepSettings(t *testing.T) {
	settings := domain.DefaultAppSettings()
	before := settings

	require.NoError(t, (&Overrides{}).Apply(&settings))

	assert.Equal(t, before, settings)
}

func TestApply_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		o    Overrides
	}{
		{"bad timeout", Overrides{APITimeout: "soon"}},
		{"negative timeout", Overrides{APITimeout: "-1s"}},
		{"bad offline", Overrides{Offline: "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := domain.DefaultAppSettings()
			settings.API.BaseURL = "https://keep.example"

			err := tt.o.Apply(&settings)

			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, "https://keep.example", settings.API.BaseURL)
		})
	}
}
