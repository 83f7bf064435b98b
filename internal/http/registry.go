package http

import (
	"context"
	"sync"

	"bibliophile/internal/booklist"
	"bibliophile/internal/library"
	"bibliophile/internal/notify"
	"bibliophile/internal/session"
)

// Scope is one user's pair of state services. The services themselves are
// single-threaded; the scope mutex serializes requests onto them.
type Scope struct {
	mu      sync.Mutex
	Library *library.Service
	Lists   *booklist.Service
}

// Do runs fn with exclusive access to the scope's services.
func (s *Scope) Do(fn func(lib *library.Service, lists *booklist.Service)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.Library, s.Lists)
}

// ServiceRegistry keeps one Scope per authenticated user: built on the
// first request after login, reloaded on identity change, torn down on
// logout.
type ServiceRegistry struct {
	mu          sync.Mutex
	libraryRepo library.Repository
	listRepo    booklist.Repository
	notifier    notify.Notifier
	scopes      map[string]*Scope
}

func NewServiceRegistry(libraryRepo library.Repository, listRepo booklist.Repository, notifier notify.Notifier) *ServiceRegistry {
	return &ServiceRegistry{
		libraryRepo: libraryRepo,
		listRepo:    listRepo,
		notifier:    notifier,
		scopes:      make(map[string]*Scope),
	}
}

// For returns the scope for the identity, building and loading it on first
// use.
func (reg *ServiceRegistry) For(ctx context.Context, id *session.Identity) *Scope {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if scope, ok := reg.scopes[id.ID]; ok {
		return scope
	}

	scope := &Scope{
		Library: library.NewService(reg.libraryRepo, reg.notifier),
		Lists:   booklist.NewService(reg.listRepo, reg.notifier),
	}
	scope.Library.SetIdentity(ctx, id)
	scope.Lists.SetIdentity(ctx, id)
	reg.scopes[id.ID] = scope
	return scope
}

// Drop tears a user's scope down.
func (reg *ServiceRegistry) Drop(userID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.scopes, userID)
}

// SessionSubscriber adapts the registry to the session change stream: a new
// identity activates its scope, a nil identity tears the previous one down.
func (reg *ServiceRegistry) SessionSubscriber() func(*session.Identity) {
	var prev *session.Identity
	return func(id *session.Identity) {
		if id == nil {
			if prev != nil {
				reg.Drop(prev.ID)
				prev = nil
			}
			return
		}
		prev = id
		reg.For(context.Background(), id)
	}
}
