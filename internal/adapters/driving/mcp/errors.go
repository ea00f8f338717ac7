// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the academic portal. It lets AI assistants search documents and read the
// landing content.
package mcp

import "errors"

// ErrMissingSearchFactory is returned when the search controller factory is not provided.
var ErrMissingSearchFactory = errors.New("mcp: search controller factory is required")

// ErrMissingLandingService is returned when the landing service is not provided.
var ErrMissingLandingService = errors.New("mcp: landing service is required")
