package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"bibliophile/internal/entity"
	"bibliophile/internal/platform/googlebooks"
)

// CatalogResolver is the get-by-id slice of the googlebooks client.
type CatalogResolver interface {
	GetByID(ctx context.Context, id string) (entity.BookSummary, error)
}

type CatalogHandler struct {
	catalog CatalogResolver
}

func NewCatalogHandler(catalog CatalogResolver) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetByID serves the book detail page's catalog lookup. A record that does
// not resolve is a distinct not-found state, not a transport failure.
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/books/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	book, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		var statusErr *googlebooks.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		log.Printf("catalog get failed id=%s err=%v", id, err)
		JSONError(w, http.StatusBadGateway, "CATALOG_ERROR", "Failed to load book details", nil)
		return
	}

	JSONSuccess(w, book, nil)
}
