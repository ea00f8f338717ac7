package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

// uriScheme is the custom URI scheme for portal resources.
const uriScheme = "academico://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "recent",
		Name:        "recent",
		Description: "Recent documents, blog posts and categories",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "categories/{category}",
		Name:        "category-documents",
		Description: "First page of documents in a category",
		MIMEType:    "application/json",
	}, s.handleCategoryResource)
}

// handleRecentResource returns the landing content as JSON.
func (s *Server) handleRecentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	view := s.ports.Landing.Load(ctx)
	if view.Cancelled {
		return nil, ctx.Err()
	}
	if view.State == domain.LandingError {
		return nil, fmt.Errorf("loading recent content: %s", view.ErrorMessage())
	}
	return jsonResult(req.Params.URI, recentOutput(view))
}

// handleCategoryResource returns page 1 of a category search.
func (s *Server) handleCategoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	category := extractCategory(req.Params.URI)
	if category == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	_, output, err := s.handleSearch(ctx, nil, SearchInput{Category: category})
	if err != nil {
		return nil, err
	}
	return jsonResult(req.Params.URI, output)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCategory extracts the category from a URI like
// academico://categories/{category}. The category may be percent-encoded.
func extractCategory(uri string) string {
	const prefix = uriScheme + "categories/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	raw := strings.TrimPrefix(uri, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		return ""
	}
	category, err := url.PathUnescape(raw)
	if err != nil {
		return ""
	}
	return category
}
