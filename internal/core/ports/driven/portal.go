package driven

import (
	"context"

	"github.com/jorge2985/El-Academico/internal/core/domain"
)

// PortalClient is the portal REST backend.
// Every method fails by returning an error on network or server failure.
type PortalClient interface {
	// SearchDocuments returns one page of documents matching the query.
	// The request carries query, page, limit and any set filters.
	SearchDocuments(ctx context.Context, query domain.SearchQuery) (*domain.SearchResultPage, error)

	// FetchRecentDocuments returns the most recently published documents.
	FetchRecentDocuments(ctx context.Context) ([]domain.DocumentSummary, error)

	// FetchRecentBlogPosts returns the most recent blog posts.
	FetchRecentBlogPosts(ctx context.Context) ([]domain.BlogPost, error)
}
