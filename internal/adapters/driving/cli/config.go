package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jorge2985/El-Academico/internal/core/domain"
	coreservices "github.com/jorge2985/El-Academico/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change the settings stored in the configuration file.

Environment variables (ACADEMICO_API_URL, ACADEMICO_PUBLIC_URL,
ACADEMICO_API_TIMEOUT, ACADEMICO_OFFLINE) and flags override the file.`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Show a single setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Validate and save a single setting.

Keys:
  api.base_url          portal API root
  api.timeout           request timeout, e.g. 15s
  api.rate_per_second   request rate limit, 0 disables it
  portal.public_url     web root used in shareable URLs
  search.page_size      documents per page
  search.debounce_ms    delay before a typed search runs
  landing.categories    comma-separated category links
  offline               use the built-in sample catalogue`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func settingsService() (*Services, error) {
	s, err := requireServices()
	if err != nil {
		return nil, err
	}
	if s.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return s, nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	s, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	for _, key := range s.Settings.Keys() {
		cmd.Printf("%-20s = %s\n", key, settingValue(settings, key))
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	s, err := settingsService()
	if err != nil {
		return err
	}

	key := args[0]
	if !slices.Contains(s.Settings.Keys(), key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Println(settingValue(settings, key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	s, err := settingsService()
	if err != nil {
		return err
	}

	if err := s.Settings.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Saved %s\n", args[0])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	s, err := settingsService()
	if err != nil {
		return err
	}
	cmd.Println(s.Settings.Path())
	return nil
}

// settingValue renders a setting the way config set accepts it.
func settingValue(s *domain.AppSettings, key string) string {
	switch key {
	case coreservices.KeyAPIBaseURL:
		return s.API.BaseURL
	case coreservices.KeyAPITimeout:
		return s.API.Timeout.String()
	case coreservices.KeyAPIRate:
		return strconv.FormatFloat(s.API.RatePerSecond, 'f', -1, 64)
	case coreservices.KeyPortalPublicURL:
		return s.Portal.PublicURL
	case coreservices.KeySearchPageSize:
		return strconv.Itoa(s.Search.PageSize)
	case coreservices.KeySearchDebounceMS:
		return strconv.FormatInt(s.Search.Debounce.Milliseconds(), 10)
	case coreservices.KeyCategories:
		return strings.Join(s.Landing.Categories, ",")
	case coreservices.KeyOffline:
		return strconv.FormatBool(s.Offline)
	default:
		return ""
	}
}
