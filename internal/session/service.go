// Package session owns the authenticated identity that gates every other
// store. Identity lifecycle is delegated to the identity provider; this
// layer observes outcomes and broadcasts changes.
package session

import (
	"context"
	"log"
	"strings"

	"bibliophile/internal/notify"
)

// Identity is the authenticated user context.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Provider is the external identity provider: credential checks and account
// creation live behind it, never in this layer.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Identity, string, error)
	SignUp(ctx context.Context, email, password, name string) (*Identity, string, error)
}

// Service holds the current identity. Not safe for concurrent use; the HTTP
// layer serializes access per session.
type Service struct {
	provider    Provider
	notifier    notify.Notifier
	current     *Identity
	loading     bool
	subscribers []func(*Identity)
}

func NewService(provider Provider, notifier notify.Notifier) *Service {
	return &Service{provider: provider, notifier: notifier}
}

// Subscribe registers a callback fired on every identity change, including
// the change to nil at logout. This is the auth-state-change stream.
func (s *Service) Subscribe(fn func(*Identity)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Service) setIdentity(id *Identity) {
	s.current = id
	for _, fn := range s.subscribers {
		fn(id)
	}
}

// Current returns the active identity, or nil when unauthenticated.
func (s *Service) Current() *Identity { return s.current }

func (s *Service) Loading() bool { return s.loading }

// Login authenticates and returns the signed token on success.
func (s *Service) Login(ctx context.Context, email, password string) (string, notify.Notice) {
	s.loading = true
	defer func() { s.loading = false }()

	id, token, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		log.Printf("session login failed email=%s err=%v", email, err)
		n := notify.Error(notify.CodeAuthRequired, "Login failed. Please check your credentials.")
		s.notifier.Notify(n)
		return "", n
	}

	s.setIdentity(withDisplayName(id))
	n := notify.Success("Login successful")
	s.notifier.Notify(n)
	return token, n
}

// Signup creates the account and signs the user in.
func (s *Service) Signup(ctx context.Context, email, password, name string) (string, notify.Notice) {
	s.loading = true
	defer func() { s.loading = false }()

	id, token, err := s.provider.SignUp(ctx, email, password, name)
	if err != nil {
		log.Printf("session signup failed email=%s err=%v", email, err)
		n := notify.Error(notify.CodeBadInput, "Signup failed. Please try again.")
		s.notifier.Notify(n)
		return "", n
	}

	s.setIdentity(withDisplayName(id))
	n := notify.Success("Account created successfully")
	s.notifier.Notify(n)
	return token, n
}

// Logout clears the identity. The provider keeps no server-side session
// state beyond the token, so this never fails.
func (s *Service) Logout() notify.Notice {
	s.setIdentity(nil)
	n := notify.Info("", "You have been logged out")
	s.notifier.Notify(n)
	return n
}

// Restore applies an identity recovered from a still-valid token. Covers
// the window before any explicit login in this process, the way a startup
// session check does.
func (s *Service) Restore(id *Identity) {
	s.setIdentity(withDisplayName(id))
}

// withDisplayName fills Name from the email local-part when the provider
// supplies none.
func withDisplayName(id *Identity) *Identity {
	if id == nil {
		return nil
	}
	if id.Name == "" {
		if at := strings.Index(id.Email, "@"); at > 0 {
			id.Name = id.Email[:at]
		} else {
			id.Name = "User"
		}
	}
	return id
}
