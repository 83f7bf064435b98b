// Package googlebooks wraps the Google Books volumes API. Every record is
// normalized into entity.BookSummary so downstream code never sees a missing
// field.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"bibliophile/internal/entity"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://www.googleapis.com/books/v1"

// Normalization sentinels. These are load-bearing: downstream components
// assume every field is present and non-empty.
const (
	unknownTitle     = "Unknown Title"
	unknownAuthor    = "Unknown Author"
	noDescription    = "No description available."
	uncategorized    = "Uncategorized"
	placeholderImage = "/placeholder.svg"
	unknownDate      = "Unknown"
	unknownPublisher = "Unknown Publisher"
)

// DefaultMaxResults is the page size used when the caller does not pick one.
const DefaultMaxResults = 20

// StatusError is returned for any non-2xx response from the catalog.
// Retry is a manual user action, so the client makes exactly one attempt.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog error: status %d", e.Code)
}

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(userAgent string, rps int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: userAgent,
		baseURL:   DefaultBaseURL,
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// WithBaseURL points the client at a different volumes endpoint. Used by
// tests and the GOOGLE_BOOKS_BASE_URL override.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = base
	return c
}

// volume matches one item of the volumes response. All volumeInfo fields
// are optional on the wire.
type volume struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title         string   `json:"title"`
		Authors       []string `json:"authors"`
		Publisher     string   `json:"publisher"`
		PublishedDate string   `json:"publishedDate"`
		Description   string   `json:"description"`
		PageCount     int      `json:"pageCount"`
		Categories    []string `json:"categories"`
		ImageLinks    struct {
			SmallThumbnail string `json:"smallThumbnail"`
			Thumbnail      string `json:"thumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
}

type volumesResponse struct {
	Kind       string   `json:"kind"`
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

// SearchResult is one page of catalog matches plus the reported total.
type SearchResult struct {
	Books      []entity.BookSummary `json:"books"`
	TotalItems int                  `json:"totalItems"`
}

// Search queries the catalog. startIndex is a zero-based result offset, not
// a page number. An absent items array means zero matches, not a failure.
func (c *Client) Search(ctx context.Context, query string, startIndex, maxResults int) (*SearchResult, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	u := fmt.Sprintf("%s/volumes?q=%s&startIndex=%d&maxResults=%d",
		c.baseURL, url.QueryEscape(query), startIndex, maxResults)

	var res volumesResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}

	if len(res.Items) == 0 {
		return &SearchResult{Books: []entity.BookSummary{}, TotalItems: 0}, nil
	}

	books := make([]entity.BookSummary, 0, len(res.Items))
	for _, v := range res.Items {
		books = append(books, normalize(v))
	}
	return &SearchResult{Books: books, TotalItems: res.TotalItems}, nil
}

// GetByID resolves a single volume. A missing record surfaces as a
// StatusError with the remote status (404 from the catalog).
func (c *Client) GetByID(ctx context.Context, id string) (entity.BookSummary, error) {
	u := fmt.Sprintf("%s/volumes/%s", c.baseURL, url.PathEscape(id))

	var v volume
	if err := c.get(ctx, u, &v); err != nil {
		return entity.BookSummary{}, err
	}
	return normalize(v), nil
}

func normalize(v volume) entity.BookSummary {
	info := v.VolumeInfo

	b := entity.BookSummary{
		ID:            v.ID,
		Title:         info.Title,
		Authors:       info.Authors,
		Description:   info.Description,
		Categories:    info.Categories,
		PublishedDate: info.PublishedDate,
		Publisher:     info.Publisher,
		PageCount:     info.PageCount,
	}
	if b.Title == "" {
		b.Title = unknownTitle
	}
	if len(b.Authors) == 0 {
		b.Authors = []string{unknownAuthor}
	}
	if b.Description == "" {
		b.Description = noDescription
	}
	if len(b.Categories) == 0 {
		b.Categories = []string{uncategorized}
	}
	b.ImageLinks.Thumbnail = info.ImageLinks.Thumbnail
	if b.ImageLinks.Thumbnail == "" {
		b.ImageLinks.Thumbnail = placeholderImage
	}
	b.ImageLinks.SmallThumbnail = info.ImageLinks.SmallThumbnail
	if b.ImageLinks.SmallThumbnail == "" {
		b.ImageLinks.SmallThumbnail = placeholderImage
	}
	if b.PublishedDate == "" {
		b.PublishedDate = unknownDate
	}
	if b.Publisher == "" {
		b.Publisher = unknownPublisher
	}
	return b
}

func (c *Client) get(ctx context.Context, url string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode}
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
