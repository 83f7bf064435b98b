package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"bibliophile/internal/booklist"
	"bibliophile/internal/entity"
	"bibliophile/internal/library"
)

type ListHandler struct {
	registry *ServiceRegistry
}

func NewListHandler(registry *ServiceRegistry) *ListHandler {
	return &ListHandler{registry: registry}
}

// parseListPath resolves /lists/{id}, /lists/{id}/books and
// /lists/{id}/books/{bookId}.
func parseListPath(path string) (listID, bookID string, booksSegment, ok bool) {
	trimmed := strings.Trim(path, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 || parts[0] != "lists" || parts[1] == "" {
		return "", "", false, false
	}
	switch len(parts) {
	case 2:
		return parts[1], "", false, true
	case 3:
		if parts[2] == "books" {
			return parts[1], "", true, true
		}
	case 4:
		if parts[2] == "books" && parts[3] != "" {
			return parts[1], parts[3], true, true
		}
	}
	return "", "", false, false
}

// Index returns the user's lists with their cached book counts.
func (h *ListHandler) Index(w http.ResponseWriter, r *http.Request) {
	scope := h.registry.For(r.Context(), identityFrom(r))

	var lists []entity.BookList
	scope.Do(func(lib *library.Service, ls *booklist.Service) {
		lists = ls.Lists()
	})

	JSONSuccess(w, lists, map[string]int{"count": len(lists)})
}

type createListRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

// Create makes a list. Empty-after-trim names are rejected here, before any
// remote call; the store itself only enforces the session.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input createListRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(input); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", toErrorDetails(validationErrors))
		return
	}

	scope := h.registry.For(r.Context(), identityFrom(r))
	scope.Do(func(lib *library.Service, ls *booklist.Service) {
		id, n := ls.Create(r.Context(), strings.TrimSpace(input.Name), input.Description, input.IsPublic)
		if !n.OK() {
			JSONNotice(w, n, nil)
			return
		}
		list, _ := ls.Get(id)
		JSONSuccessCreated(w, list)
	})
}

type updateListRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
}

// Item dispatches the per-list and membership operations.
func (h *ListHandler) Item(w http.ResponseWriter, r *http.Request) {
	listID, bookID, booksSegment, ok := parseListPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	scope := h.registry.For(r.Context(), identityFrom(r))

	switch {
	case !booksSegment && r.Method == http.MethodPatch:
		var input updateListRequest
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
			return
		}
		if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
			JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []ErrorDetail{
				{Field: "name", Message: "Name must not be empty"},
			})
			return
		}
		scope.Do(func(lib *library.Service, ls *booklist.Service) {
			n := ls.Update(r.Context(), listID, booklist.UpdateFields{
				Name:        input.Name,
				Description: input.Description,
				IsPublic:    input.IsPublic,
			})
			if !n.OK() {
				JSONNotice(w, n, nil)
				return
			}
			list, _ := ls.Get(listID)
			JSONNotice(w, n, list)
		})
	case !booksSegment && r.Method == http.MethodDelete:
		scope.Do(func(lib *library.Service, ls *booklist.Service) {
			JSONNotice(w, ls.Delete(r.Context(), listID), nil)
		})
	case !booksSegment && r.Method == http.MethodGet:
		scope.Do(func(lib *library.Service, ls *booklist.Service) {
			list, found := ls.Get(listID)
			if !found {
				JSONError(w, http.StatusNotFound, "NOT_FOUND", "List not found", nil)
				return
			}
			JSONSuccess(w, list, nil)
		})
	case booksSegment && bookID == "" && r.Method == http.MethodGet:
		scope.Do(func(lib *library.Service, ls *booklist.Service) {
			ids := ls.BookIDs(r.Context(), listID)
			JSONSuccess(w, ids, map[string]int{"count": len(ids)})
		})
	case booksSegment && bookID == "" && r.Method == http.MethodPost:
		var input struct {
			BookID string `json:"bookId" validate:"required"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
			return
		}
		if validationErrors := ValidateStruct(input); len(validationErrors) > 0 {
			JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", toErrorDetails(validationErrors))
			return
		}
		scope.Do(func(lib *library.Service, ls *booklist.Service) {
			JSONNotice(w, ls.AddBook(r.Context(), listID, input.BookID), nil)
		})
	case booksSegment && bookID != "" && r.Method == http.MethodDelete:
		scope.Do(func(lib *library.Service, ls *booklist.Service) {
			JSONNotice(w, ls.RemoveBook(r.Context(), listID, bookID), nil)
		})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
