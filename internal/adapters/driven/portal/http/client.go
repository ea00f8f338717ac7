package portalhttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jorge2985/El-Academico/internal/core/domain"
	"github.com/jorge2985/El-Academico/internal/core/ports/driven"
	"github.com/jorge2985/El-Academico/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.PortalClient = (*Client)(nil)

const (
	// HeaderRequestID carries a per-request uuid.
	HeaderRequestID = "X-Request-ID"

	// maxErrorBody caps how much of an error response is kept.
	maxErrorBody = 4096

	pathSearch      = "/documents/search"
	pathRecentDocs  = "/documents/recent"
	pathRecentPosts = "/blog/recent"
)

// Config configures a Client.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64

	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the portal REST API.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *RateLimiter
}

// NewClient creates a portal client. BaseURL must be an absolute http(s) URL.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: api base url: %v", domain.ErrInvalidInput, err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("%w: api base url %q must be absolute http(s)", domain.ErrInvalidInput, cfg.BaseURL)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = domain.DefaultAPITimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: base.String(),
		http:    hc,
		limiter: NewRateLimiter(cfg.RatePerSecond),
	}, nil
}

// SearchDocuments fetches one page of search results.
func (c *Client) SearchDocuments(ctx context.Context, q domain.SearchQuery) (*domain.SearchResultPage, error) {
	var resp searchResponse
	if err := c.get(ctx, pathSearch, q.RequestValues(), &resp); err != nil {
		return nil, err
	}

	page := &domain.SearchResultPage{
		Items:      make([]domain.DocumentSummary, 0, len(resp.Data)),
		TotalPages: resp.TotalPages,
	}
	for _, d := range resp.Data {
		page.Items = append(page.Items, d.toDomain())
	}
	return page, nil
}

// FetchRecentDocuments fetches the most recently published documents.
func (c *Client) FetchRecentDocuments(ctx context.Context) ([]domain.DocumentSummary, error) {
	var resp []documentDTO
	if err := c.get(ctx, pathRecentDocs, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.DocumentSummary, 0, len(resp))
	for _, d := range resp {
		out = append(out, d.toDomain())
	}
	return out, nil
}

// FetchRecentBlogPosts fetches the most recent blog posts.
func (c *Client) FetchRecentBlogPosts(ctx context.Context) ([]domain.BlogPost, error) {
	var resp []blogPostDTO
	if err := c.get(ctx, pathRecentPosts, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.BlogPost, 0, len(resp))
	for _, p := range resp {
		out = append(out, p.toDomain())
	}
	return out, nil
}

// get issues a GET and decodes a 2xx JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: GET %s: %v", domain.ErrPortalUnavailable, path, err)
	}
	defer resp.Body.Close()

	logger.Debug("GET %s -> %d in %s (request %s)", endpoint, resp.StatusCode, time.Since(started).Round(time.Millisecond), requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			RequestID:  requestID,
			RetryAfter: c.limiter.Observe(resp),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("decode %s: empty body", path)
		}
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
