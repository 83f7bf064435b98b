package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"bibliophile/internal/booklist"
	"bibliophile/internal/entity"
	"bibliophile/internal/httpx"
	"bibliophile/internal/library"
	"bibliophile/internal/session"
)

type LibraryHandler struct {
	registry *ServiceRegistry
}

func NewLibraryHandler(registry *ServiceRegistry) *LibraryHandler {
	return &LibraryHandler{registry: registry}
}

func identityFrom(r *http.Request) *session.Identity {
	return &session.Identity{ID: httpx.UserIDFrom(r), Email: httpx.UserEmailFrom(r)}
}

func parseLibraryPath(path string) (bookID, action string, ok bool) {
	trimmed := strings.Trim(path, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 || parts[0] != "library" || parts[1] == "" {
		return "", "", false
	}
	switch len(parts) {
	case 2:
		return parts[1], "", true
	case 3:
		switch parts[2] {
		case "toggle-read", "notes", "rating":
			return parts[1], parts[2], true
		}
	}
	return "", "", false
}

// List returns the user's library mirror.
func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	scope := h.registry.For(r.Context(), identityFrom(r))

	var books []entity.Book
	scope.Do(func(lib *library.Service, lists *booklist.Service) {
		books = lib.Books()
	})

	JSONSuccess(w, books, map[string]int{"count": len(books)})
}

type addBookRequest struct {
	entity.BookSummary
}

// Add saves a catalog search result into the library.
func (h *LibraryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if input.ID == "" || input.Title == "" {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []ErrorDetail{
			{Field: "id", Message: "id and title are required"},
		})
		return
	}

	scope := h.registry.For(r.Context(), identityFrom(r))
	scope.Do(func(lib *library.Service, lists *booklist.Service) {
		n := lib.Add(r.Context(), input.BookSummary)
		JSONNotice(w, n, nil)
	})
}

// Item dispatches the per-book operations parsed out of the path.
func (h *LibraryHandler) Item(w http.ResponseWriter, r *http.Request) {
	bookID, action, ok := parseLibraryPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	scope := h.registry.For(r.Context(), identityFrom(r))

	switch {
	case action == "" && r.Method == http.MethodDelete:
		scope.Do(func(lib *library.Service, lists *booklist.Service) {
			JSONNotice(w, lib.Remove(r.Context(), bookID), nil)
		})
	case action == "" && r.Method == http.MethodGet:
		scope.Do(func(lib *library.Service, lists *booklist.Service) {
			book, found := lib.Get(bookID)
			if !found {
				JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found in your library", nil)
				return
			}
			JSONSuccess(w, book, nil)
		})
	case action == "toggle-read" && r.Method == http.MethodPost:
		scope.Do(func(lib *library.Service, lists *booklist.Service) {
			JSONNotice(w, lib.ToggleRead(r.Context(), bookID), nil)
		})
	case action == "notes" && r.Method == http.MethodPut:
		var input struct {
			Notes string `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
			return
		}
		scope.Do(func(lib *library.Service, lists *booklist.Service) {
			JSONNotice(w, lib.SetNotes(r.Context(), bookID, input.Notes), nil)
		})
	case action == "rating" && r.Method == http.MethodPut:
		var input struct {
			Rating int `json:"rating" validate:"required,rating"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
			return
		}
		if validationErrors := ValidateStruct(input); len(validationErrors) > 0 {
			JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", toErrorDetails(validationErrors))
			return
		}
		scope.Do(func(lib *library.Service, lists *booklist.Service) {
			JSONNotice(w, lib.SetRating(r.Context(), bookID, input.Rating), nil)
		})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
