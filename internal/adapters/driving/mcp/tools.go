package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/logger"
)

// SearchInput is the input schema for the search_documents tool.
type SearchInput struct {
	Query      string `json:"query,omitempty" jsonschema:"free-text search term; empty matches every document"`
	Category   string `json:"category,omitempty" jsonschema:"restrict results to a subject area"`
	University string `json:"university,omitempty" jsonschema:"restrict results to an institution"`
	FromDate   string `json:"fromDate,omitempty" jsonschema:"earliest publication date, YYYY-MM-DD"`
	ToDate     string `json:"toDate,omitempty" jsonschema:"latest publication date, YYYY-MM-DD"`
	Page       int    `json:"page,omitempty" jsonschema:"load results up to this page (default 1)"`
}

// SearchOutput is the output schema for the search_documents tool.
type SearchOutput struct {
	Documents  []DocumentOutput `json:"documents"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	HasMore    bool             `json:"hasMore"`
	URL        string           `json:"url"`
}

// DocumentOutput represents a single document.
type DocumentOutput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors,omitempty"`
	University  string   `json:"university,omitempty"`
	Category    string   `json:"category,omitempty"`
	Abstract    string   `json:"abstract,omitempty"`
	URL         string   `json:"url,omitempty"`
	PublishedAt string   `json:"publishedAt,omitempty"`
}

// RecentInput is the (empty) input schema for the recent_content tool.
type RecentInput struct{}

// RecentOutput is the output schema for the recent_content tool.
type RecentOutput struct {
	Documents  []DocumentOutput `json:"documents"`
	Posts      []PostOutput     `json:"posts"`
	Categories []string         `json:"categories"`
}

// PostOutput represents a single blog post.
type PostOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	URL         string `json:"url,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documents",
		Description: "Search academic documents by term and filters, returning accumulated results up to a page and a shareable URL",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recent_content",
		Description: "List the most recent documents and blog posts plus the browsable categories",
	}, s.handleRecent)
}

// handleSearch runs a search on a controller of its own and closes it
// before returning.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	q, err := domain.NewSearchQuery(0).WithFilters(map[string]string{
		domain.ParamCategory:   input.Category,
		domain.ParamUniversity: input.University,
		domain.ParamFromDate:   input.FromDate,
		domain.ParamToDate:     input.ToDate,
	})
	if err != nil {
		return nil, SearchOutput{}, err
	}
	q.Term = strings.TrimSpace(input.Query)
	if input.Page > 1 {
		q.Page = input.Page
	}

	controller, err := s.ports.Searches.NewController(q.Values().Encode())
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("creating search: %w", err)
	}
	defer controller.Close()

	logger.Debug("MCP search %q filters=%v page=%d", q.Term, q.Filters(), q.Page)
	if err := controller.Start(ctx); err != nil {
		return nil, SearchOutput{}, err
	}

	state := controller.State()
	output := SearchOutput{
		Documents:  documentsOutput(state.Results),
		Page:       state.Query.Page,
		TotalPages: state.TotalPages,
		HasMore:    state.HasMore,
		URL:        controller.ShareURL(),
	}
	return nil, output, nil
}

// handleRecent returns the landing content or a tool error.
func (s *Server) handleRecent(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ RecentInput,
) (*mcp.CallToolResult, RecentOutput, error) {
	view := s.ports.Landing.Load(ctx)
	switch {
	case view.Cancelled:
		return nil, RecentOutput{}, ctx.Err()
	case view.State == domain.LandingError:
		return nil, RecentOutput{}, fmt.Errorf("loading recent content: %s", view.ErrorMessage())
	}
	return nil, recentOutput(view), nil
}

func recentOutput(view domain.LandingView) RecentOutput {
	posts := make([]PostOutput, len(view.Posts))
	for i, p := range view.Posts {
		posts[i] = PostOutput{
			ID:          p.ID,
			Title:       p.DisplayTitle(),
			Author:      p.Author,
			Excerpt:     p.Excerpt,
			URL:         p.URL,
			PublishedAt: formatDate(p.PublishedAt),
		}
	}
	categories := view.Categories
	if categories == nil {
		categories = []string{}
	}
	return RecentOutput{
		Documents:  documentsOutput(view.Documents),
		Posts:      posts,
		Categories: categories,
	}
}

func documentsOutput(docs []domain.DocumentSummary) []DocumentOutput {
	out := make([]DocumentOutput, len(docs))
	for i := range docs {
		d := &docs[i]
		out[i] = DocumentOutput{
			ID:          d.ID,
			Title:       d.DisplayTitle(),
			Authors:     d.Authors,
			University:  d.University,
			Category:    d.Category,
			Abstract:    d.Abstract,
			URL:         d.URL,
			PublishedAt: formatDate(d.PublishedAt),
		}
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}
