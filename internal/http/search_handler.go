package http

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"bibliophile/internal/platform/googlebooks"
	"bibliophile/internal/search"

	"github.com/google/uuid"
)

// sessionTTL is how long an idle search accumulation survives between
// load-more requests.
const sessionTTL = 15 * time.Minute

// pagerEntry serializes requests onto one session's pager, the same way a
// Scope serializes a user's services. The Pager itself is single-threaded;
// an infinite-scroll sentinel plus a manual load-more click can land two
// overlapping requests on the same sid.
type pagerEntry struct {
	mu       sync.Mutex
	pager    *search.Pager
	lastUsed time.Time
}

// SearchHandler runs catalog searches. Infinite scroll needs the
// accumulated results to survive across requests, so each new query is
// issued a session id and its pager kept until it idles out.
type SearchHandler struct {
	catalog  search.Catalog
	mu       sync.Mutex
	sessions map[string]*pagerEntry
}

func NewSearchHandler(catalog search.Catalog) *SearchHandler {
	return &SearchHandler{
		catalog:  catalog,
		sessions: make(map[string]*pagerEntry),
	}
}

type searchResponse struct {
	SID        string `json:"sid"`
	Query      string `json:"query"`
	State      string `json:"state"`
	Books      any    `json:"books"`
	TotalItems int    `json:"totalItems"`
	HasMore    bool   `json:"hasMore"`
}

// Search handles GET /search?q=... (new query) and GET /search?sid=...
// (load more). A new query always resets accumulation; a catalog failure
// surfaces with a retry affordance, never an automatic retry.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	sid := r.URL.Query().Get("sid")

	switch {
	case query != "":
		h.newSearch(w, r, query)
	case sid != "":
		h.loadMore(w, r, sid)
	default:
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "q or sid is required", nil)
	}
}

func (h *SearchHandler) newSearch(w http.ResponseWriter, r *http.Request, query string) {
	pager := search.NewPager(h.catalog, googlebooks.DefaultMaxResults)
	err := pager.Search(r.Context(), query)
	if err != nil {
		h.catalogError(w, err)
		return
	}

	sid := uuid.New().String()
	h.mu.Lock()
	h.evictIdle()
	h.sessions[sid] = &pagerEntry{pager: pager, lastUsed: time.Now()}
	h.mu.Unlock()

	h.respond(w, sid, pager)
}

func (h *SearchHandler) loadMore(w http.ResponseWriter, r *http.Request, sid string) {
	h.mu.Lock()
	entry, ok := h.sessions[sid]
	if ok {
		entry.lastUsed = time.Now()
	}
	h.mu.Unlock()

	if !ok {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Unknown search session", nil)
		return
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.pager.LoadMore(r.Context()); err != nil {
		h.catalogError(w, err)
		return
	}
	h.respond(w, sid, entry.pager)
}

func (h *SearchHandler) respond(w http.ResponseWriter, sid string, pager *search.Pager) {
	books := pager.Books()
	JSONSuccess(w, searchResponse{
		SID:        sid,
		Query:      pager.Query(),
		State:      pager.State().String(),
		Books:      books,
		TotalItems: pager.TotalItems(),
		HasMore:    pager.HasMore(),
	}, nil)
}

// catalogError covers both transport failures and non-success statuses;
// the client offers a manual "Try Again".
func (h *SearchHandler) catalogError(w http.ResponseWriter, err error) {
	message := "Failed to search books. Please try again."
	var statusErr *googlebooks.StatusError
	if errors.As(err, &statusErr) {
		log.Printf("catalog search failed status=%d", statusErr.Code)
	} else {
		log.Printf("catalog search failed err=%v", err)
	}
	JSONError(w, http.StatusBadGateway, "CATALOG_ERROR", message, nil)
}

// evictIdle drops accumulations past their TTL. Caller holds the lock.
func (h *SearchHandler) evictIdle() {
	cutoff := time.Now().Add(-sessionTTL)
	for sid, entry := range h.sessions {
		if entry.lastUsed.Before(cutoff) {
			delete(h.sessions, sid)
		}
	}
}
