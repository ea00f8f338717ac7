package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configmemory "github.com/jorge2985/El-Academico/internal/adapters/driven/config/memory"
	"github.com/jorge2985/El-Academico/internal/adapters/driven/location"
	"github.com/jorge2985/El-Academico/internal/adapters/driven/portal/memory"
	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
	coreservices "github.com/jorge2985/El-Academico/internal/core/services"
	"github.com/jorge2985/El-Academico/internal/testutil"
)

const testPublicURL = "https://portal.test"

// setupTestServices installs services backed by the seeded catalogue and
// returns a cleanup func restoring the previous state.
func setupTestServices() (*memory.Catalogue, func()) {
	catalogue := memory.NewSeeded()
	factory := coreservices.NewSearchControllerFactory(
		catalogue,
		testutil.NewFakeClock(),
		func(raw string) (driven.Location, error) { return location.New(testPublicURL, raw) },
		coreservices.SearchControllerConfig{},
	)

	oldServices, oldBootstrap := services, bootstrap
	services = &Services{
		Searches: factory,
		OneShot:  factory,
		Landing:  coreservices.NewLandingAggregator(catalogue, []string{"Ciencias", "Derecho"}),
		Settings: coreservices.NewSettingsService(configmemory.NewConfigStore()),
	}
	bootstrap = nil

	return catalogue, func() {
		services, bootstrap = oldServices, oldBootstrap
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// resetFlags restores every flag to its default so tests do not leak
// values into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "academico", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "offline"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"search", "recent", "tui", "mcp", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestBootstrap_ReceivesGlobalFlags(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	prepared := services

	var got Options
	SetBootstrap(func(opts Options) (*Services, error) {
		got = opts
		return prepared, nil
	})

	_, err := execute(t, "--offline", "--config-dir", "/tmp/academico", "config", "path")

	require.NoError(t, err)
	assert.True(t, got.Offline)
	assert.Equal(t, "/tmp/academico", got.ConfigDir)
}

func TestBootstrap_ErrorAbortsCommand(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	SetBootstrap(func(Options) (*Services, error) {
		return nil, domain.ErrInvalidInput
	})

	_, err := execute(t, "recent")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBootstrap_SkippedForVersion(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	called := false
	SetBootstrap(func(Options) (*Services, error) {
		called = true
		return nil, nil
	})

	_, err := execute(t, "version")

	require.NoError(t, err)
	assert.False(t, called)
}

func TestCommands_WithoutServices(t *testing.T) {
	oldServices, oldBootstrap := services, bootstrap
	services, bootstrap = nil, nil
	defer func() { services, bootstrap = oldServices, oldBootstrap }()

	for _, args := range [][]string{{"search", "x"}, {"recent"}, {"config", "list"}} {
		_, err := execute(t, args...)
		assert.ErrorIs(t, err, errNotConfigured, args)
	}
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}
