package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"bibliophile/internal/auth"
	"bibliophile/internal/entity"
	"bibliophile/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

// TestIdentity is the authenticated user handler tests run as.
var TestIdentity = session.Identity{
	ID:    "test-user-id-123",
	Email: "reader@example.com",
	Name:  "reader",
}

// TestBookSummary is a normalized catalog record for fixtures.
var TestBookSummary = entity.BookSummary{
	ID:          "vol-dune-1",
	Title:       "Dune",
	Authors:     []string{"Frank Herbert"},
	Description: "Paul Atreides on Arrakis.",
	Categories:  []string{"Science Fiction"},
	ImageLinks: entity.ImageLinks{
		Thumbnail:      "https://books.example.com/dune.jpg",
		SmallThumbnail: "https://books.example.com/dune-s.jpg",
	},
	PublishedDate: "1965",
	Publisher:     "Chilton Books",
	PageCount:     412,
}

// TestBook is TestBookSummary as a saved library entry.
var TestBook = entity.Book{
	BookSummary: TestBookSummary,
	IsRead:      false,
	DateAdded:   "2024-05-01T10:00:00Z",
}

// GenerateTestToken generates a JWT token for testing.
func GenerateTestToken(secret, userID, email string) string {
	token, _ := auth.GenerateToken(secret, userID, email, time.Hour)
	return token
}

// GenerateExpiredToken generates an expired JWT token for testing.
func GenerateExpiredToken(secret, userID, email string) string {
	c := auth.Claims{
		Sub:   userID,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a new HTTP request for testing.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth creates a new HTTP request with JWT auth for testing.
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse is the decoded body plus status of a recorded response.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
