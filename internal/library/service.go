// Package library owns the set of books a user has saved. Local view state
// mirrors the record store with one optimistic step per operation: the
// remote write happens first, and the local patch is applied only after it
// succeeds, so a failure leaves the mirror at its pre-call value.
package library

import (
	"context"
	"fmt"
	"log"
	"time"

	"bibliophile/internal/entity"
	"bibliophile/internal/notify"
	"bibliophile/internal/session"
)

// Repository is the record-store client for per-user saved books. Every
// query is scoped by an explicit user id filter.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]entity.Book, error)
	Insert(ctx context.Context, userID string, book entity.Book) error
	Delete(ctx context.Context, userID, bookID string) error
	SetRead(ctx context.Context, userID, bookID string, read bool) error
	SetNotes(ctx context.Context, userID, bookID, notes string) error
	SetRating(ctx context.Context, userID, bookID string, rating int) error
}

// Service is one user's library mirror. Not safe for concurrent use.
type Service struct {
	repo     Repository
	notifier notify.Notifier
	user     *session.Identity
	books    []entity.Book
	loading  bool
}

func NewService(repo Repository, notifier notify.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// SetIdentity switches the session the mirror is scoped to and reloads.
// A nil identity clears the mirror rather than erroring.
func (s *Service) SetIdentity(ctx context.Context, user *session.Identity) {
	s.user = user
	s.Reload(ctx)
}

// Reload replaces the mirror with a full fetch from the record store.
func (s *Service) Reload(ctx context.Context) {
	if s.user == nil {
		s.books = nil
		return
	}

	s.loading = true
	defer func() { s.loading = false }()

	books, err := s.repo.ListByUser(ctx, s.user.ID)
	if err != nil {
		log.Printf("library reload failed user=%s err=%v", s.user.ID, err)
		s.notifier.Notify(notify.Error(notify.CodeRemoteError, "Failed to load your books"))
		return
	}
	s.books = books
}

// Books returns a copy of the mirror.
func (s *Service) Books() []entity.Book {
	out := make([]entity.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Get is a pure local lookup, no remote access.
func (s *Service) Get(bookID string) (entity.Book, bool) {
	for _, b := range s.books {
		if b.ID == bookID {
			return b, true
		}
	}
	return entity.Book{}, false
}

// Contains reports whether the book is in the library, from local state.
func (s *Service) Contains(bookID string) bool {
	_, ok := s.Get(bookID)
	return ok
}

func (s *Service) Loading() bool { return s.loading }

// Add saves a catalog result. Duplicates are detected against the current
// mirror, not a server round-trip, and leave state unchanged.
func (s *Service) Add(ctx context.Context, summary entity.BookSummary) notify.Notice {
	if s.user == nil {
		n := notify.Error(notify.CodeAuthRequired, "You must be logged in to add books")
		s.notifier.Notify(n)
		return n
	}
	if s.Contains(summary.ID) {
		n := notify.Info(notify.CodeDuplicate, "This book is already in your library")
		s.notifier.Notify(n)
		return n
	}

	book := entity.Book{
		BookSummary: summary,
		IsRead:      false,
		DateAdded:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.repo.Insert(ctx, s.user.ID, book); err != nil {
		log.Printf("library add failed user=%s book=%s err=%v", s.user.ID, summary.ID, err)
		n := notify.Error(notify.CodeRemoteError, "Failed to add book")
		s.notifier.Notify(n)
		return n
	}

	s.books = append(s.books, book)
	n := notify.Success("Book added to your library")
	s.notifier.Notify(n)
	return n
}

// Remove deletes the record scoped to (user, book) and filters the local
// entry out.
func (s *Service) Remove(ctx context.Context, bookID string) notify.Notice {
	if s.user == nil {
		return notify.Error(notify.CodeAuthRequired, "You must be logged in")
	}

	if err := s.repo.Delete(ctx, s.user.ID, bookID); err != nil {
		log.Printf("library remove failed user=%s book=%s err=%v", s.user.ID, bookID, err)
		n := notify.Error(notify.CodeRemoteError, "Failed to remove book")
		s.notifier.Notify(n)
		return n
	}

	kept := s.books[:0]
	for _, b := range s.books {
		if b.ID != bookID {
			kept = append(kept, b)
		}
	}
	s.books = kept

	n := notify.Success("Book removed from your library")
	s.notifier.Notify(n)
	return n
}

// ToggleRead flips the locally known read value, writes it remotely, and
// applies it locally only after remote success. A remote failure is a
// user-perceived no-op rather than visible drift.
func (s *Service) ToggleRead(ctx context.Context, bookID string) notify.Notice {
	if s.user == nil {
		return notify.Error(notify.CodeAuthRequired, "You must be logged in")
	}

	book, ok := s.Get(bookID)
	if !ok {
		return notify.Error(notify.CodeNotFound, "Book not found in your library")
	}
	newRead := !book.IsRead

	if err := s.repo.SetRead(ctx, s.user.ID, bookID, newRead); err != nil {
		log.Printf("library toggle read failed user=%s book=%s err=%v", s.user.ID, bookID, err)
		n := notify.Error(notify.CodeRemoteError, "Failed to update book status")
		s.notifier.Notify(n)
		return n
	}

	s.patch(bookID, func(b *entity.Book) { b.IsRead = newRead })

	label := "unread"
	if newRead {
		label = "read"
	}
	n := notify.Success(fmt.Sprintf("Book marked as %s", label))
	s.notifier.Notify(n)
	return n
}

// SetNotes persists free-text notes for one book.
func (s *Service) SetNotes(ctx context.Context, bookID, notes string) notify.Notice {
	if s.user == nil {
		return notify.Error(notify.CodeAuthRequired, "You must be logged in")
	}
	if !s.Contains(bookID) {
		return notify.Error(notify.CodeNotFound, "Book not found in your library")
	}

	if err := s.repo.SetNotes(ctx, s.user.ID, bookID, notes); err != nil {
		log.Printf("library set notes failed user=%s book=%s err=%v", s.user.ID, bookID, err)
		n := notify.Error(notify.CodeRemoteError, "Failed to update notes")
		s.notifier.Notify(n)
		return n
	}

	s.patch(bookID, func(b *entity.Book) { b.Notes = notes })
	n := notify.Success("Notes updated")
	s.notifier.Notify(n)
	return n
}

// SetRating persists a 1-5 star rating.
func (s *Service) SetRating(ctx context.Context, bookID string, rating int) notify.Notice {
	if s.user == nil {
		return notify.Error(notify.CodeAuthRequired, "You must be logged in")
	}
	if rating < 1 || rating > 5 {
		return notify.Error(notify.CodeBadInput, "Rating must be between 1 and 5")
	}
	if !s.Contains(bookID) {
		return notify.Error(notify.CodeNotFound, "Book not found in your library")
	}

	if err := s.repo.SetRating(ctx, s.user.ID, bookID, rating); err != nil {
		log.Printf("library rate failed user=%s book=%s err=%v", s.user.ID, bookID, err)
		n := notify.Error(notify.CodeRemoteError, "Failed to rate book")
		s.notifier.Notify(n)
		return n
	}

	s.patch(bookID, func(b *entity.Book) { b.Rating = rating })
	n := notify.Success(fmt.Sprintf("Book rated %d stars", rating))
	s.notifier.Notify(n)
	return n
}

func (s *Service) patch(bookID string, apply func(*entity.Book)) {
	for i := range s.books {
		if s.books[i].ID == bookID {
			apply(&s.books[i])
			return
		}
	}
}
