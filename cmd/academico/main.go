// Command academico searches the El Académico academic portal from the
// terminal: one-off searches, recent content, an interactive UI and an MCP
// server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jorge2985/El-Academico/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
