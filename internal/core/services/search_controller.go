package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
	"github.com/jorge2985/El-Academico/internal/core/ports/driving"
	"github.com/jorge2985/El-Academico/internal/logger"
)

// Ensure SearchController implements the interface.
var _ driving.SearchController = (*SearchController)(nil)

// SearchControllerConfig tunes a SearchController.
type SearchControllerConfig struct {
	// Debounce is the quiet period after a term or filter change before a
	// new search is issued. Zero schedules the search immediately.
	Debounce time.Duration

	// PageSize is the number of documents requested per page (default 12).
	PageSize int
}

// SearchController owns the search term, filters, page cursor and the
// accumulated results, and mirrors the applied query into a Location.
//
// Every response is tagged with the generation of the new search it belongs
// to. Starting a new search bumps the generation, so responses from
// superseded searches, including load-more pages requested before it,
// are discarded instead of racing.
type SearchController struct {
	client   driven.PortalClient
	location driven.Location
	clock    driven.Clock
	debounce time.Duration
	pageSize int

	mu         sync.Mutex
	state      domain.SearchUIState
	applied    domain.SearchQuery // query behind the displayed results
	generation uint64
	pending    driven.Timer
	pendingSeq uint64
	seedPage   int  // page named by the location at construction
	started    bool // Start has run at least once
	edited     bool // term or filters changed before the first Start
	ctx        context.Context
	cancel     context.CancelFunc
	closed     bool
	subs       []chan domain.SearchUIState
}

// NewSearchController creates a controller whose query is seeded from the
// location, on page 1. Edits made before Start apply on top of the seed.
func NewSearchController(
	client driven.PortalClient,
	location driven.Location,
	clock driven.Clock,
	cfg SearchControllerConfig,
) *SearchController {
	if cfg.Debounce < 0 {
		cfg.Debounce = 0
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = domain.DefaultPageSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	q := domain.ParseSearchQuery(location.Current(), cfg.PageSize)
	seedPage := q.Page
	q.Page = 1

	return &SearchController{
		client:   client,
		location: location,
		clock:    clock,
		debounce: cfg.Debounce,
		pageSize: cfg.PageSize,
		state:    domain.SearchUIState{Query: q},
		applied:  q,
		seedPage: seedPage,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs the initial search and replaces any pending debounced one.
// When the location names a page beyond 1, pages are loaded until that
// page is reached so a shared link restores the same view. Term or filter
// edits made before the first Start are folded into that search, which
// then stays on page 1. Later calls re-seed from the location.
func (c *SearchController) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.ErrControllerClosed
	}
	c.cancel()
	c.ctx, c.cancel = context.WithCancel(ctx)
	runCtx := c.ctx

	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.pendingSeq++

	var target int
	switch {
	case c.started:
		q := domain.ParseSearchQuery(c.location.Current(), c.pageSize)
		target = q.Page
		q.Page = 1
		c.state.Query = q
	case c.edited:
		target = 1
	default:
		target = c.seedPage
	}
	c.started = true
	q := c.state.Query
	c.mu.Unlock()

	logger.Section("Search Start")
	logger.Debug("Seeded query: %q filters=%v target page=%d", q.Term, q.Filters(), target)

	if err := c.runNewSearch(runCtx); err != nil {
		return err
	}

	for {
		st := c.State()
		if st.Query.Page >= target || !st.HasMore {
			return nil
		}
		if err := c.LoadMore(runCtx); err != nil {
			return err
		}
		if c.State().Query.Page == st.Query.Page {
			// superseded by a newer search
			return nil
		}
	}
}

// SetTerm replaces the search term and schedules a debounced new search.
func (c *SearchController) SetTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state.Query.Term = term
	c.edited = true
	c.publishLocked()
	c.scheduleLocked()
}

// SetFilters merges partial into the filter set, resets the page to 1 and
// schedules a debounced new search. Invalid filters are rejected and
// nothing is scheduled.
func (c *SearchController) SetFilters(partial map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrControllerClosed
	}

	next, err := c.state.Query.WithFilters(partial)
	if err != nil {
		return err
	}
	next.Page = 1
	c.state.Query = next
	c.edited = true
	c.publishLocked()
	c.scheduleLocked()
	return nil
}

// Flush runs a pending debounced search now instead of waiting for the timer.
func (c *SearchController) Flush(ctx context.Context) bool {
	c.mu.Lock()
	if c.closed || c.pending == nil {
		c.mu.Unlock()
		return false
	}
	c.pending.Stop()
	c.pending = nil
	c.pendingSeq++
	c.mu.Unlock()

	logger.Debug("Flushing pending search")
	_ = c.runNewSearch(ctx)
	return true
}

// LoadMore requests the page after the one displayed and appends it.
// It does nothing while a fetch is in flight or when no pages remain.
func (c *SearchController) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.ErrControllerClosed
	}
	if c.state.IsLoading || !c.state.HasMore {
		logger.Debug("Load more ignored: loading=%t hasMore=%t", c.state.IsLoading, c.state.HasMore)
		c.mu.Unlock()
		return nil
	}

	gen := c.generation
	q := c.applied.ForPage(c.applied.Page + 1)
	c.state.Phase = domain.PhaseLoadingMore
	c.state.IsLoading = true
	c.publishLocked()
	c.mu.Unlock()

	logger.Debug("Loading page %d for %q", q.Page, q.Term)
	page, err := c.client.SearchDocuments(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.generation {
		logger.Debug("Discarding stale page %d (generation %d, current %d)", q.Page, gen, c.generation)
		return nil
	}
	if err != nil {
		c.failLocked(q, err)
		return fmt.Errorf("load page %d: %w", q.Page, err)
	}

	c.state.Results = append(c.state.Results, page.Items...)
	c.applyLocked(q, page)
	return nil
}

// State returns a snapshot of the search state.
func (c *SearchController) State() domain.SearchUIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// ShareURL returns the full shareable address of the current location.
func (c *SearchController) ShareURL() string {
	return c.location.String()
}

// Subscribe returns a channel that always holds the most recent state.
// Slow readers skip intermediate states. The channel closes on Close.
func (c *SearchController) Subscribe() <-chan domain.SearchUIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan domain.SearchUIState, 1)
	if c.closed {
		close(ch)
		return ch
	}
	c.subs = append(c.subs, ch)
	return ch
}

// Close cancels any pending search and in-flight requests.
func (c *SearchController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.cancel()
	for _, ch := range c.subs {
		close(ch)
	}
	c.subs = nil
}

// scheduleLocked restarts the debounce timer.
func (c *SearchController) scheduleLocked() {
	if c.pending != nil {
		c.pending.Stop()
	}
	c.pendingSeq++
	seq := c.pendingSeq
	c.pending = c.clock.AfterFunc(c.debounce, func() { c.fire(seq) })
	logger.Debug("Search scheduled in %s (seq %d)", c.debounce, seq)
}

// fire runs the debounced search unless it was superseded while waiting
// for the lock.
func (c *SearchController) fire(seq uint64) {
	c.mu.Lock()
	if c.closed || seq != c.pendingSeq || c.pending == nil {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	ctx := c.ctx
	c.mu.Unlock()

	_ = c.runNewSearch(ctx)
}

// runNewSearch fetches page 1 of the current query and replaces the results.
func (c *SearchController) runNewSearch(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.ErrControllerClosed
	}
	c.generation++
	gen := c.generation
	q := c.state.Query.ForPage(1)
	c.state.Phase = domain.PhaseLoadingNewSearch
	c.state.IsLoading = true
	c.publishLocked()
	c.mu.Unlock()

	logger.Debug("New search %q filters=%v (generation %d)", q.Term, q.Filters(), gen)
	page, err := c.client.SearchDocuments(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.generation {
		logger.Debug("Discarding stale search (generation %d, current %d)", gen, c.generation)
		return nil
	}
	if err != nil {
		c.failLocked(q, err)
		return fmt.Errorf("search %q: %w", q.Term, err)
	}

	c.state.Results = make([]domain.DocumentSummary, len(page.Items))
	copy(c.state.Results, page.Items)
	c.applyLocked(q, page)
	return nil
}

// applyLocked records a successful response for q and mirrors q into the
// location. Results must already be updated.
func (c *SearchController) applyLocked(q domain.SearchQuery, page *domain.SearchResultPage) {
	c.applied = q
	c.state.Query.Page = q.Page
	c.state.TotalPages = page.TotalPages
	c.state.HasMore = page.TotalPages > q.Page
	c.state.LastError = nil
	c.state.Phase = domain.PhaseIdle
	c.state.IsLoading = false

	c.location.Replace(q.Values())
	logger.Debug("Applied page %d/%d (%d results, hasMore=%t)",
		q.Page, page.TotalPages, len(c.state.Results), c.state.HasMore)
	c.publishLocked()
}

// failLocked clears the loading flag and keeps the last good results.
func (c *SearchController) failLocked(q domain.SearchQuery, err error) {
	logger.Error("search %q page %d failed: %v", q.Term, q.Page, err)
	c.state.LastError = err
	c.state.Phase = domain.PhaseIdle
	c.state.IsLoading = false
	c.publishLocked()
}

// publishLocked replaces whatever each subscriber has not read yet.
func (c *SearchController) publishLocked() {
	if len(c.subs) == 0 {
		return
	}
	snap := c.state.Clone()
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}
