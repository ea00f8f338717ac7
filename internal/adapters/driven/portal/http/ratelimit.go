package portalhttp

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HeaderRetryAfter is the retry-after header (seconds or HTTP date).
const HeaderRetryAfter = "Retry-After"

// RateLimiter throttles requests proactively and remembers the server's
// Retry-After so requests are not sent before it elapses.
type RateLimiter struct {
	mu         sync.Mutex
	bucket     *rate.Limiter
	retryUntil time.Time
	now        func() time.Time
}

// NewRateLimiter creates a limiter allowing perSecond requests with a
// burst of 1. Zero or negative disables proactive throttling.
func NewRateLimiter(perSecond float64) *RateLimiter {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &RateLimiter{
		bucket: rate.NewLimiter(limit, 1),
		now:    time.Now,
	}
}

// Wait blocks until a request may be sent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	until := r.retryUntil
	r.mu.Unlock()

	if wait := until.Sub(r.now()); wait > 0 {
		t := time.NewTimer(wait)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	return r.bucket.Wait(ctx)
}

// Observe records a 429 response and returns the advertised delay.
func (r *RateLimiter) Observe(resp *http.Response) time.Duration {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return 0
	}
	delay := parseRetryAfter(resp.Header.Get(HeaderRetryAfter), r.now())
	if delay <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if until := r.now().Add(delay); until.After(r.retryUntil) {
		r.retryUntil = until
	}
	return delay
}

func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(v); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return at.Sub(now)
	}
	return 0
}
