// Package memory provides an in-process portal used by --offline runs,
// demos and tests. It answers the same queries as the REST portal over a
// fixed catalogue.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
)

// Ensure Catalogue implements the interface.
var _ driven.PortalClient = (*Catalogue)(nil)

// RecentLimit is the number of items returned by the recent endpoints.
const RecentLimit = 6

// Catalogue is an in-memory PortalClient. Matching ignores case and accents.
type Catalogue struct {
	mu    sync.RWMutex
	docs  []domain.DocumentSummary
	posts []domain.BlogPost

	// failWith, when set, is returned by every call.
	failWith error
}

// New creates a catalogue with the given content.
func New(docs []domain.DocumentSummary, posts []domain.BlogPost) *Catalogue {
	c := &Catalogue{}
	c.Reset(docs, posts)
	return c
}

// NewSeeded creates a catalogue with the built-in sample content.
func NewSeeded() *Catalogue {
	return New(SeedDocuments(), SeedPosts())
}

// Reset replaces the catalogue content.
func (c *Catalogue) Reset(docs []domain.DocumentSummary, posts []domain.BlogPost) {
	d := make([]domain.DocumentSummary, len(docs))
	copy(d, docs)
	p := make([]domain.BlogPost, len(posts))
	copy(p, posts)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = d
	c.posts = p
}

// FailWith makes every subsequent call return err. Nil restores normal behaviour.
func (c *Catalogue) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failWith = err
}

// SearchDocuments returns the requested page of matching documents,
// newest first.
func (c *Catalogue) SearchDocuments(ctx context.Context, q domain.SearchQuery) (*domain.SearchResultPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.failWith != nil {
		return nil, c.failWith
	}

	var matched []domain.DocumentSummary
	for _, d := range c.docs {
		if matches(d, q) {
			matched = append(matched, d)
		}
	}
	sortNewestFirst(matched)

	size := q.PageSize
	if size <= 0 {
		size = domain.DefaultPageSize
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	totalPages := (len(matched) + size - 1) / size

	start := (page - 1) * size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}

	items := make([]domain.DocumentSummary, end-start)
	copy(items, matched[start:end])
	return &domain.SearchResultPage{Items: items, TotalPages: totalPages}, nil
}

// FetchRecentDocuments returns the newest documents.
func (c *Catalogue) FetchRecentDocuments(ctx context.Context) ([]domain.DocumentSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.failWith != nil {
		return nil, c.failWith
	}

	docs := make([]domain.DocumentSummary, len(c.docs))
	copy(docs, c.docs)
	sortNewestFirst(docs)
	if len(docs) > RecentLimit {
		docs = docs[:RecentLimit]
	}
	return docs, nil
}

// FetchRecentBlogPosts returns the newest posts.
func (c *Catalogue) FetchRecentBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.failWith != nil {
		return nil, c.failWith
	}

	posts := make([]domain.BlogPost, len(c.posts))
	copy(posts, c.posts)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	if len(posts) > RecentLimit {
		posts = posts[:RecentLimit]
	}
	return posts, nil
}

func matches(d domain.DocumentSummary, q domain.SearchQuery) bool {
	if q.Category != "" && fold(d.Category) != fold(q.Category) {
		return false
	}
	if q.University != "" && !strings.Contains(fold(d.University), fold(q.University)) {
		return false
	}
	if !q.FromDate.IsZero() && d.PublishedAt.Before(q.FromDate) {
		return false
	}
	// toDate is inclusive of the whole day
	if !q.ToDate.IsZero() && !d.PublishedAt.Before(q.ToDate.Add(24*time.Hour)) {
		return false
	}

	term := fold(strings.TrimSpace(q.Term))
	if term == "" {
		return true
	}
	haystack := fold(strings.Join([]string{
		d.Title, d.Abstract, d.University, d.Category, strings.Join(d.Authors, " "),
	}, " "))
	for _, word := range strings.Fields(term) {
		if !strings.Contains(haystack, word) {
			return false
		}
	}
	return true
}

// fold lowercases s and strips combining marks, so "Ingeniería" matches
// "ingenieria".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func sortNewestFirst(docs []domain.DocumentSummary) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].PublishedAt.After(docs[j].PublishedAt)
	})
}
