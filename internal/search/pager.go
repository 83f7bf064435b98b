// Package search accumulates paginated catalog results for one query, the
// way the infinite-scroll search view consumes them.
package search

import (
	"context"

	"bibliophile/internal/entity"
	"bibliophile/internal/platform/googlebooks"
)

type State int

const (
	StateIdle State = iota
	StateSearching
	StateLoadingMore
	StateResults
	StateEmpty
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateLoadingMore:
		return "loading_more"
	case StateResults:
		return "results"
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Catalog is the slice of the googlebooks client the pager needs.
type Catalog interface {
	Search(ctx context.Context, query string, startIndex, maxResults int) (*googlebooks.SearchResult, error)
}

// Pager runs one query at a time. A new Search resets accumulated results,
// the page index and the reported total before the first page request.
// Not safe for concurrent use; callers serialize access per session.
type Pager struct {
	catalog  Catalog
	pageSize int

	query      string
	books      []entity.BookSummary
	page       int
	totalItems int
	state      State
	lastErr    error
}

func NewPager(catalog Catalog, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = googlebooks.DefaultMaxResults
	}
	return &Pager{catalog: catalog, pageSize: pageSize, state: StateIdle}
}

// Search starts a fresh query. A failed first page leaves the pager in
// StateFailed with the error retained for a manual retry.
func (p *Pager) Search(ctx context.Context, query string) error {
	p.query = query
	p.books = nil
	p.page = 0
	p.totalItems = 0
	p.lastErr = nil
	p.state = StateSearching

	res, err := p.catalog.Search(ctx, query, 0, p.pageSize)
	if err != nil {
		p.state = StateFailed
		p.lastErr = err
		return err
	}

	p.books = append(p.books, res.Books...)
	p.totalItems = res.TotalItems
	if len(p.books) == 0 {
		p.state = StateEmpty
	} else {
		p.state = StateResults
	}
	return nil
}

// LoadMore fetches the next page. It is gated by HasMore, so a scroll
// sentinel can keep firing once the total is reached without issuing
// requests. A failed page keeps the accumulated results.
func (p *Pager) LoadMore(ctx context.Context) error {
	if !p.HasMore() || p.loading() {
		return nil
	}

	p.state = StateLoadingMore
	nextPage := p.page + 1

	res, err := p.catalog.Search(ctx, p.query, nextPage*p.pageSize, p.pageSize)
	if err != nil {
		p.state = StateResults
		return err
	}

	p.books = append(p.books, res.Books...)
	p.page = nextPage
	p.state = StateResults
	return nil
}

// HasMore reports whether the catalog claims results beyond what has been
// accumulated. Re-evaluated after every append.
func (p *Pager) HasMore() bool {
	return (p.state == StateResults || p.state == StateLoadingMore) &&
		len(p.books) < p.totalItems
}

func (p *Pager) loading() bool {
	return p.state == StateSearching || p.state == StateLoadingMore
}

func (p *Pager) Query() string { return p.query }

func (p *Pager) State() State { return p.state }

func (p *Pager) TotalItems() int { return p.totalItems }

func (p *Pager) Err() error { return p.lastErr }

// Books returns the accumulated results. The slice is shared; callers must
// not mutate it.
func (p *Pager) Books() []entity.BookSummary { return p.books }
