// Package domain defines the core entities of the portal client.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines the fundamental types:
//
//   - SearchQuery: term, filters and page cursor, round-tripped through a URL
//   - DocumentSummary: a document as listed by the portal
//   - BlogPost: a post as listed on the landing page
//   - SearchResultPage: one page of search results
//   - SearchUIState: the accumulated state driven by the search controller
//   - LandingView: the aggregated landing page content
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
