package entity

// ImageLinks carries the two cover URLs the catalog exposes. Both fall back
// to the placeholder path during normalization, so they are never empty.
type ImageLinks struct {
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}

// BookSummary is a catalog record: everything known about a book before the
// user saves it. Transient, never persisted on its own.
type BookSummary struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Authors       []string   `json:"authors"`
	Description   string     `json:"description"`
	Categories    []string   `json:"categories"`
	ImageLinks    ImageLinks `json:"imageLinks"`
	PublishedDate string     `json:"publishedDate"`
	Publisher     string     `json:"publisher"`
	PageCount     int        `json:"pageCount"`
}

// Book is a summary plus the library-only fields set once the user owns it.
type Book struct {
	BookSummary
	IsRead    bool   `json:"isRead"`
	DateAdded string `json:"dateAdded"` // ISO 8601, set at add time, immutable
	Notes     string `json:"notes,omitempty"`
	Rating    int    `json:"rating,omitempty"` // 1-5, 0 when unrated
}
