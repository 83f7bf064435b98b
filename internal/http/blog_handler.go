package http

import (
	"net/http"
	"strings"

	"bibliophile/internal/blog"
	"bibliophile/internal/genre"
)

type BlogHandler struct{}

func NewBlogHandler() *BlogHandler {
	return &BlogHandler{}
}

func (h *BlogHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts := blog.All()
	JSONSuccess(w, posts, map[string]int{"count": len(posts)})
}

func (h *BlogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/blog/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	post, err := blog.GetByID(id)
	if err != nil {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Post not found", nil)
		return
	}
	JSONSuccess(w, post, nil)
}

type GenreHandler struct{}

func NewGenreHandler() *GenreHandler {
	return &GenreHandler{}
}

func (h *GenreHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/genres/")
	if slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}

	g, err := genre.GetBySlug(slug)
	if err != nil {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "Genre not found", nil)
		return
	}
	JSONSuccess(w, g, nil)
}
