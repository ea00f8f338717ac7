package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
	"github.com/jorge2985/El-Academico/internal/core/ports/driving"
	"github.com/jorge2985/El-Academico/internal/logger"
)

// Ensure LandingAggregator implements the interface.
var _ driving.LandingService = (*LandingAggregator)(nil)

// LandingAggregator fetches recent documents and blog posts concurrently
// and reports either both lists or the first error.
// A partial success is reported as an error.
type LandingAggregator struct {
	client driven.PortalClient

	mu         sync.RWMutex
	categories []string
}

// NewLandingAggregator creates a landing aggregator with static category links.
func NewLandingAggregator(client driven.PortalClient, categories []string) *LandingAggregator {
	a := &LandingAggregator{client: client}
	a.SetCategories(categories)
	return a
}

// SetCategories replaces the category links, e.g. after a config reload.
func (a *LandingAggregator) SetCategories(categories []string) {
	cp := make([]string, len(categories))
	copy(cp, categories)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.categories = cp
}

// Categories returns the current category links.
func (a *LandingAggregator) Categories() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	cp := make([]string, len(a.categories))
	copy(cp, a.categories)
	return cp
}

// Load issues both fetches concurrently and waits for them to settle.
func (a *LandingAggregator) Load(ctx context.Context) domain.LandingView {
	logger.Section("Landing")

	var (
		docs  []domain.DocumentSummary
		posts []domain.BlogPost
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := a.client.FetchRecentDocuments(gctx)
		if err != nil {
			return fmt.Errorf("recent documents: %w", err)
		}
		docs = d
		return nil
	})
	g.Go(func() error {
		p, err := a.client.FetchRecentBlogPosts(gctx)
		if err != nil {
			return fmt.Errorf("recent posts: %w", err)
		}
		posts = p
		return nil
	})
	err := g.Wait()

	if ctx.Err() != nil {
		logger.Debug("Landing load cancelled: %v", ctx.Err())
		return domain.LandingView{State: domain.LandingLoading, Cancelled: true}
	}
	if err != nil {
		logger.Error("landing load failed: %v", err)
		return domain.LandingView{State: domain.LandingError, Err: err}
	}

	logger.Debug("Landing loaded: %d documents, %d posts", len(docs), len(posts))
	return domain.LandingView{
		State:      domain.LandingReady,
		Documents:  docs,
		Posts:      posts,
		Categories: a.Categories(),
	}
}
