package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jorge2985/El-Academico/internal/adapters/driving/tui"
	"github.com/jorge2985/El-Academico/internal/logger"
)

var tuiURL string

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

The landing view shows the newest documents and blog posts; choosing a
category opens a filtered search. The search view searches as you type,
loads more results as you scroll and shows a shareable URL.

Controls:
  ↑/k, ↓/j  - Navigate
  Tab       - Next field
  Enter     - Search now / Select
  Ctrl+N    - Load more
  Esc       - Back
  Ctrl+C    - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiURL, "url", "", "open the search view at a shareable URL or query string")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	s, err := requireServices()
	if err != nil {
		return err
	}
	if !isTerminal() {
		return fmt.Errorf("tui requires an interactive terminal")
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in TUI: %v\n%s", r, debug.Stack())
		}
	}()

	// the alternate screen owns the terminal
	if !logger.IsVerbose() {
		prev := logger.SetOutput(io.Discard)
		defer logger.SetOutput(prev)
	}

	ctx := commandContext(cmd)
	if s.WatchConfig != nil {
		go func() {
			if err := s.WatchConfig(ctx); err != nil {
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	ports := tui.NewPorts(s.Searches, s.Landing)
	ports.Location = tuiURL

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
