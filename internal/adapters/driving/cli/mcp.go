package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jorge2985/El-Academico/internal/adapters/driving/mcp"
	"github.com/jorge2985/El-Academico/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

Tools:
  search_documents  search by term and filters, up to a page
  recent_content    newest documents, blog posts and categories

By default, the server communicates over stdio using JSON-RPC. Use --port
to serve streamable HTTP instead.

Examples:
  # Stdio mode (default)
  academico mcp serve

  # HTTP mode
  academico mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "academico": {
        "command": "/path/to/academico",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func newMCPServer() (*mcp.Server, error) {
	s, err := requireServices()
	if err != nil {
		return nil, err
	}
	return mcp.NewServer(&mcp.Ports{
		Searches: s.OneShot,
		Landing:  s.Landing,
	})
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := newMCPServer()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	if s := services; s.WatchConfig != nil {
		go func() {
			if err := s.WatchConfig(ctx); err != nil {
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
