package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultPageSize is the number of documents requested per page.
const DefaultPageSize = 12

// DateLayout is the wire format for fromDate and toDate.
const DateLayout = "2006-01-02"

// URL query parameter names.
const (
	ParamQuery      = "query"
	ParamPage       = "page"
	ParamLimit      = "limit"
	ParamCategory   = "category"
	ParamUniversity = "university"
	ParamFromDate   = "fromDate"
	ParamToDate     = "toDate"
)

// FilterKeys lists the filter names accepted by SearchQuery.WithFilters,
// in the order they are displayed.
var FilterKeys = []string{ParamCategory, ParamUniversity, ParamFromDate, ParamToDate}

// SearchQuery is the search term, filter set and page cursor.
// It is derived from and serialised to URL query parameters.
type SearchQuery struct {
	// Term is the free-text search term. Empty matches everything.
	Term string

	// Category restricts results to a subject area.
	Category string

	// University restricts results to an institution.
	University string

	// FromDate is the inclusive lower publication bound, zero when unset.
	FromDate time.Time

	// ToDate is the inclusive upper publication bound, zero when unset.
	ToDate time.Time

	// Page is the 1-based page cursor.
	Page int

	// PageSize is the number of documents per page.
	PageSize int
}

// NewSearchQuery returns an empty query on page 1.
func NewSearchQuery(pageSize int) SearchQuery {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return SearchQuery{Page: 1, PageSize: pageSize}
}

// ParseSearchQuery seeds a query from URL parameters.
// A missing or invalid page becomes 1 and unparseable dates are ignored.
func ParseSearchQuery(values url.Values, pageSize int) SearchQuery {
	q := NewSearchQuery(pageSize)
	q.Term = values.Get(ParamQuery)
	q.Category = strings.TrimSpace(values.Get(ParamCategory))
	q.University = strings.TrimSpace(values.Get(ParamUniversity))

	if d, err := parseDate(values.Get(ParamFromDate)); err == nil {
		q.FromDate = d
	}
	if d, err := parseDate(values.Get(ParamToDate)); err == nil {
		q.ToDate = d
	}
	if p, err := strconv.Atoi(values.Get(ParamPage)); err == nil && p >= 1 {
		q.Page = p
	}
	return q
}

// Filters returns the filter set as strings, omitting unset filters.
func (q SearchQuery) Filters() map[string]string {
	filters := make(map[string]string, len(FilterKeys))
	if q.Category != "" {
		filters[ParamCategory] = q.Category
	}
	if q.University != "" {
		filters[ParamUniversity] = q.University
	}
	if !q.FromDate.IsZero() {
		filters[ParamFromDate] = q.FromDate.Format(DateLayout)
	}
	if !q.ToDate.IsZero() {
		filters[ParamToDate] = q.ToDate.Format(DateLayout)
	}
	return filters
}

// Filter returns a single filter value, or "" when unset.
func (q SearchQuery) Filter(key string) string {
	return q.Filters()[key]
}

// WithFilters merges partial into the filter set.
// Keys absent from partial are retained, empty values clear their filter.
// It returns ErrInvalidInput for unknown keys, malformed dates or an
// inverted date range; the receiver is never modified.
func (q SearchQuery) WithFilters(partial map[string]string) (SearchQuery, error) {
	next := q
	for key, raw := range partial {
		value := strings.TrimSpace(raw)
		switch key {
		case ParamCategory:
			next.Category = value
		case ParamUniversity:
			next.University = value
		case ParamFromDate, ParamToDate:
			d, err := parseDate(value)
			if err != nil {
				return q, fmt.Errorf("%w: %s %q: %v", ErrInvalidInput, key, value, err)
			}
			if key == ParamFromDate {
				next.FromDate = d
			} else {
				next.ToDate = d
			}
		default:
			return q, fmt.Errorf("%w: unknown filter %q", ErrInvalidInput, key)
		}
	}
	if !next.FromDate.IsZero() && !next.ToDate.IsZero() && next.FromDate.After(next.ToDate) {
		return q, fmt.Errorf("%w: fromDate is after toDate", ErrInvalidInput)
	}
	return next, nil
}

// Values serialises the query for the address bar.
// Empty fields are omitted; page is always present.
func (q SearchQuery) Values() url.Values {
	values := url.Values{}
	if q.Term != "" {
		values.Set(ParamQuery, q.Term)
	}
	for key, value := range q.Filters() {
		values.Set(key, value)
	}
	values.Set(ParamPage, strconv.Itoa(q.page()))
	return values
}

// RequestValues serialises the query for the search endpoint.
// Unlike Values, query and limit are always sent.
func (q SearchQuery) RequestValues() url.Values {
	values := url.Values{}
	values.Set(ParamQuery, q.Term)
	values.Set(ParamPage, strconv.Itoa(q.page()))
	values.Set(ParamLimit, strconv.Itoa(q.pageSize()))
	for key, value := range q.Filters() {
		values.Set(key, value)
	}
	return values
}

// ForPage returns a copy of the query pointing at page.
func (q SearchQuery) ForPage(page int) SearchQuery {
	q.Page = page
	return q
}

func (q SearchQuery) page() int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}

func (q SearchQuery) pageSize() int {
	if q.PageSize <= 0 {
		return DefaultPageSize
	}
	return q.PageSize
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, s)
}

// SearchResultPage is one page returned by the portal search endpoint.
type SearchResultPage struct {
	// Items are the documents on this page, in portal order.
	Items []DocumentSummary

	// TotalPages is the number of pages available for the query.
	TotalPages int
}

// Phase is the search controller's state machine position.
type Phase int

const (
	// PhaseIdle means no fetch is in flight.
	PhaseIdle Phase = iota
	// PhaseLoadingNewSearch means a page-1 fetch is in flight.
	PhaseLoadingNewSearch
	// PhaseLoadingMore means a next-page fetch is in flight.
	PhaseLoadingMore
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoadingNewSearch:
		return "loading_new_search"
	case PhaseLoadingMore:
		return "loading_more"
	default:
		return "unknown"
	}
}

// SearchUIState is the search view's state.
// Results accumulate across pages and are replaced on a new search.
type SearchUIState struct {
	Query   SearchQuery
	Results []DocumentSummary
	Phase   Phase

	// IsLoading is true while any fetch is in flight.
	IsLoading bool

	// HasMore is TotalPages > Query.Page from the most recent response.
	HasMore bool

	// TotalPages is taken from the most recent successful response.
	TotalPages int

	// LastError is the most recent fetch failure, cleared on success.
	LastError error
}

// Clone returns a copy that shares no mutable memory with s.
func (s SearchUIState) Clone() SearchUIState {
	c := s
	if s.Results != nil {
		c.Results = make([]DocumentSummary, len(s.Results))
		copy(c.Results, s.Results)
	}
	return c
}
