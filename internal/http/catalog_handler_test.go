package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bibliophile/internal/entity"
	"bibliophile/internal/platform/googlebooks"
	"bibliophile/internal/testutil"
)

type stubResolver struct {
	book entity.BookSummary
	err  error
}

func (s *stubResolver) GetByID(ctx context.Context, id string) (entity.BookSummary, error) {
	if s.err != nil {
		return entity.BookSummary{}, s.err
	}
	return s.book, nil
}

func TestCatalogGetByID(t *testing.T) {
	handler := NewCatalogHandler(&stubResolver{book: testutil.TestBookSummary})

	w := httptest.NewRecorder()
	handler.GetByID(w, testutil.NewRequest(http.MethodGet, "/books/vol-dune-1", nil))

	res := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, res.Code)
	data := res.Body["data"].(map[string]interface{})
	assert.Equal(t, "vol-dune-1", data["id"])
	assert.Equal(t, "Dune", data["title"])
}

func TestCatalogGetByID_NotFound(t *testing.T) {
	handler := NewCatalogHandler(&stubResolver{err: &googlebooks.StatusError{Code: http.StatusNotFound}})

	w := httptest.NewRecorder()
	handler.GetByID(w, testutil.NewRequest(http.MethodGet, "/books/missing", nil))

	res := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusNotFound, res.Code)
	errBody := res.Body["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errBody["code"])
	assert.Equal(t, "Book not found", errBody["message"])
}

func TestCatalogGetByID_RemoteFailure(t *testing.T) {
	handler := NewCatalogHandler(&stubResolver{err: &googlebooks.StatusError{Code: http.StatusInternalServerError}})

	w := httptest.NewRecorder()
	handler.GetByID(w, testutil.NewRequest(http.MethodGet, "/books/vol-1", nil))

	res := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusBadGateway, res.Code)
	errBody := res.Body["error"].(map[string]interface{})
	assert.Equal(t, "CATALOG_ERROR", errBody["code"])
}

func TestCatalogGetByID_EmptyID(t *testing.T) {
	handler := NewCatalogHandler(&stubResolver{})

	w := httptest.NewRecorder()
	handler.GetByID(w, testutil.NewRequest(http.MethodGet, "/books/", nil))

	res := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusNotFound, res.Code)
}
