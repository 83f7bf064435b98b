// Package booklist owns a user's named collections of book references and
// keeps a denormalized per-list book count. Counts are adjusted by +1/-1 on
// membership changes, not re-queried; the remote store offers no
// transaction across the two steps, so drift on partial failure is
// accepted and only defended at the floor.
package booklist

import (
	"context"
	"log"
	"time"

	"bibliophile/internal/entity"
	"bibliophile/internal/notify"
	"bibliophile/internal/session"
)

// UpdateFields is a partial list edit; nil fields are left untouched.
type UpdateFields struct {
	Name        *string
	Description *string
	IsPublic    *bool
}

// Repository is the record-store client for lists and list membership.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]entity.BookList, error)
	Insert(ctx context.Context, userID, name, description string, isPublic bool) (entity.BookList, error)
	Update(ctx context.Context, userID, listID string, fields UpdateFields) error
	Delete(ctx context.Context, userID, listID string) error
	CountBooks(ctx context.Context, listID string) (int, error)
	MembershipExists(ctx context.Context, listID, bookID string) (bool, error)
	InsertMembership(ctx context.Context, listID, bookID string) error
	DeleteMembership(ctx context.Context, listID, bookID string) error
	ListBookIDs(ctx context.Context, listID string) ([]string, error)
}

// Service is one user's list mirror. Not safe for concurrent use.
type Service struct {
	repo     Repository
	notifier notify.Notifier
	user     *session.Identity
	lists    []entity.BookList
	loading  bool
}

func NewService(repo Repository, notifier notify.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// SetIdentity switches the session the mirror is scoped to and reloads.
func (s *Service) SetIdentity(ctx context.Context, user *session.Identity) {
	s.user = user
	s.Reload(ctx)
}

// Reload fetches the lists, then one membership count query per list. No
// batch count endpoint is assumed.
func (s *Service) Reload(ctx context.Context) {
	if s.user == nil {
		s.lists = nil
		return
	}

	s.loading = true
	defer func() { s.loading = false }()

	lists, err := s.repo.ListByUser(ctx, s.user.ID)
	if err != nil {
		log.Printf("booklist reload failed user=%s err=%v", s.user.ID, err)
		s.notifier.Notify(notify.Error(notify.CodeRemoteError, "Failed to load your lists"))
		return
	}

	for i := range lists {
		count, err := s.repo.CountBooks(ctx, lists[i].ID)
		if err != nil {
			log.Printf("booklist count failed list=%s err=%v", lists[i].ID, err)
			continue
		}
		lists[i].BookCount = count
	}
	s.lists = lists
}

// Lists returns a copy of the mirror, in whatever order the record store
// yielded. Any "most recent" or alphabetical ordering is the caller's.
func (s *Service) Lists() []entity.BookList {
	out := make([]entity.BookList, len(s.lists))
	copy(out, s.lists)
	return out
}

// Get is a pure local lookup.
func (s *Service) Get(listID string) (entity.BookList, bool) {
	for _, l := range s.lists {
		if l.ID == listID {
			return l, true
		}
	}
	return entity.BookList{}, false
}

func (s *Service) Loading() bool { return s.loading }

// Create makes a new list. Returns the new id, or "" with an error notice.
// Name trimming is the caller's job; the store enforces session only.
func (s *Service) Create(ctx context.Context, name, description string, isPublic bool) (string, notify.Notice) {
	if s.user == nil {
		n := notify.Error(notify.CodeAuthRequired, "You must be logged in to create lists")
		s.notifier.Notify(n)
		return "", n
	}

	created, err := s.repo.Insert(ctx, s.user.ID, name, description, isPublic)
	if err != nil {
		log.Printf("booklist create failed user=%s err=%v", s.user.ID, err)
		n := notify.Error(notify.CodeRemoteError, "Failed to create list")
		s.notifier.Notify(n)
		return "", n
	}

	created.BookCount = 0
	s.lists = append(s.lists, created)
	n := notify.Success("List created successfully")
	s.notifier.Notify(n)
	return created.ID, n
}

// Update edits name/description/public flag. The local UpdatedAt is stamped
// with the call time; the remote layer computes its own and the two are
// expected to converge without a re-fetch.
func (s *Service) Update(ctx context.Context, listID string, fields UpdateFields) notify.Notice {
	if s.user == nil {
		return notify.Error(notify.CodeAuthRequired, "You must be logged in")
	}

	if err := s.repo.Update(ctx, s.user.ID, listID, fields); err != nil {
		log.Printf("booklist update failed user=%s list=%s err=%v", s.user.ID, listID, err)
		n := notify.Error(notify.CodeRemoteError, "Failed to update list")
		s.notifier.Notify(n)
		return n
	}

	s.patch(listID, func(l *entity.BookList) {
		if fields.Name != nil {
			l.Name = *fields.Name
		}
		if fields.Description != nil {
			l.Description = *fields.Description
		}
		if fields.IsPublic != nil {
			l.IsPublic = *fields.IsPublic
		}
		l.UpdatedAt = time.Now().UTC()
	})

	n := notify.Success("List updated successfully")
	s.notifier.Notify(n)
	return n
}

// Delete removes the list. Membership cleanup is the record store's concern
// (cascading delete), not this layer's.
func (s *Service) Delete(ctx context.Context, listID string) notify.Notice {
	if s.user == nil {
		return notify.Error(notify.CodeAuthRequired, "You must be logged in")
	}

	if err := s.repo.Delete(ctx, s.user.ID, listID); err != nil {
		log.Printf("booklist delete failed user=%s list=%s err=%v", s.user.ID, listID, err)
		n := notify.Error(notify.CodeRemoteError, "Failed to delete list")
		s.notifier.Notify(n)
		return n
	}

	kept := s.lists[:0]
	for _, l := range s.lists {
		if l.ID != listID {
			kept = append(kept, l)
		}
	}
	s.lists = kept

	n := notify.Success("List deleted successfully")
	s.notifier.Notify(n)
	return n
}

// AddBook inserts the (list, book) pair after an existence query. An
// existing pair is a no-op with an informational notice, not an error.
func (s *Service) AddBook(ctx context.Context, listID, bookID string) notify.Notice {
	if s.user == nil {
		return notify.Error(notify.CodeAuthRequired, "You must be logged in")
	}

	exists, err := s.repo.MembershipExists(ctx, listID, bookID)
	if err != nil {
		log.Printf("booklist membership check failed list=%s book=%s err=%v", listID, bookID, err)
		n := notify.Error(notify.CodeRemoteError, "Failed to add book to list")
		s.notifier.Notify(n)
		return n
	}
	if exists {
		n := notify.Info(notify.CodeDuplicate, "Book is already in this list")
		s.notifier.Notify(n)
		return n
	}

	if err := s.repo.InsertMembership(ctx, listID, bookID); err != nil {
		log.Printf("booklist add book failed list=%s book=%s err=%v", listID, bookID, err)
		n := notify.Error(notify.CodeRemoteError, "Failed to add book to list")
		s.notifier.Notify(n)
		return n
	}

	s.patch(listID, func(l *entity.BookList) { l.BookCount++ })
	n := notify.Success("Book added to list")
	s.notifier.Notify(n)
	return n
}

// RemoveBook deletes the pair and decrements the local count, floored at
// zero to defend against count/membership drift.
func (s *Service) RemoveBook(ctx context.Context, listID, bookID string) notify.Notice {
	if s.user == nil {
		return notify.Error(notify.CodeAuthRequired, "You must be logged in")
	}

	if err := s.repo.DeleteMembership(ctx, listID, bookID); err != nil {
		log.Printf("booklist remove book failed list=%s book=%s err=%v", listID, bookID, err)
		n := notify.Error(notify.CodeRemoteError, "Failed to remove book from list")
		s.notifier.Notify(n)
		return n
	}

	s.patch(listID, func(l *entity.BookList) {
		if l.BookCount > 0 {
			l.BookCount--
		}
	})

	n := notify.Success("Book removed from list")
	s.notifier.Notify(n)
	return n
}

// BookIDs is a pure remote read. It returns an empty slice on failure,
// never an error.
func (s *Service) BookIDs(ctx context.Context, listID string) []string {
	if s.user == nil {
		return []string{}
	}

	ids, err := s.repo.ListBookIDs(ctx, listID)
	if err != nil {
		log.Printf("booklist book ids failed list=%s err=%v", listID, err)
		s.notifier.Notify(notify.Error(notify.CodeRemoteError, "Failed to load list books"))
		return []string{}
	}
	if ids == nil {
		ids = []string{}
	}
	return ids
}

func (s *Service) patch(listID string, apply func(*entity.BookList)) {
	for i := range s.lists {
		if s.lists[i].ID == listID {
			apply(&s.lists[i])
			return
		}
	}
}
