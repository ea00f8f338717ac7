// Package cli provides the cobra command tree for the academico binary.
// It is a driving adapter: commands translate flags into calls on the
// driving ports and render the results.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jorge2985/El-Academico/internal/core/ports/driving"
	"github.com/jorge2985/El-Academico/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Options are the global flag values handed to the bootstrap function.
type Options struct {
	ConfigDir string
	Offline   bool
	Verbose   bool
}

// Services are the driving ports the commands call.
type Services struct {
	// Searches creates debounced controllers for interactive use.
	Searches driving.SearchControllerFactory

	// OneShot creates controllers without debounce, for the search
	// command and the MCP server.
	OneShot driving.SearchControllerFactory

	// Landing aggregates recent documents, posts and categories.
	Landing driving.LandingService

	// Settings reads and writes the configuration file.
	Settings driving.SettingsService

	// WatchConfig, when set, reloads settings on file changes until ctx
	// is cancelled. Long-running commands start it.
	WatchConfig func(ctx context.Context) error
}

// Bootstrap builds the services from the global options.
type Bootstrap func(opts Options) (*Services, error)

var (
	bootstrap Bootstrap
	services  *Services
	options   Options
)

// errNotConfigured is returned by commands run without services.
var errNotConfigured = errors.New("services not configured")

const skipBootstrap = "skip-bootstrap"

var rootCmd = &cobra.Command{
	Use:   "academico",
	Short: "Search the El Académico portal from the terminal",
	Long: `academico searches the El Académico academic portal.

Run a one-off search, list the latest documents and blog posts, browse
interactively in the terminal UI, or expose the portal to AI assistants
through the MCP server. Every search prints a shareable URL that restores
the same view in the browser or with --url.`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&options.ConfigDir, "config-dir", "", "configuration directory (default ~/.academico)")
	flags.BoolVar(&options.Offline, "offline", false, "use the built-in sample catalogue instead of the portal API")
}

// SetBootstrap sets the function that builds services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices sets the services directly, bypassing bootstrap.
func SetServices(s *Services) {
	services = s
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(options.Verbose)

	if cmd.Annotations[skipBootstrap] == "true" || bootstrap == nil {
		return nil
	}

	logger.Section("Bootstrap")
	logger.Debug("Options: config-dir=%q offline=%t", options.ConfigDir, options.Offline)
	s, err := bootstrap(options)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	services = s
	return nil
}

func requireServices() (*Services, error) {
	if services == nil {
		return nil, errNotConfigured
	}
	return services, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
