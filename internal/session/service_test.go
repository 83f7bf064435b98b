package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bibliophile/internal/notify"
)

type fakeProvider struct {
	identity *Identity
	token    string
	err      error
}

func (f *fakeProvider) SignIn(ctx context.Context, email, password string) (*Identity, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.identity, f.token, nil
}

func (f *fakeProvider) SignUp(ctx context.Context, email, password, name string) (*Identity, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.identity, f.token, nil
}

func TestLogin(t *testing.T) {
	provider := &fakeProvider{
		identity: &Identity{ID: "u1", Email: "reader@example.com", Name: "Reader"},
		token:    "signed-token",
	}
	svc := NewService(provider, notify.NewLogNotifier())

	token, n := svc.Login(context.Background(), "reader@example.com", "pw")

	assert.Equal(t, "signed-token", token)
	assert.True(t, n.OK())
	require.NotNil(t, svc.Current())
	assert.Equal(t, "u1", svc.Current().ID)
}

func TestLogin_Failure(t *testing.T) {
	svc := NewService(&fakeProvider{err: ErrInvalidCredentials}, notify.NewLogNotifier())

	token, n := svc.Login(context.Background(), "reader@example.com", "wrong")

	assert.Empty(t, token)
	assert.Equal(t, notify.LevelError, n.Level)
	assert.Equal(t, notify.CodeAuthRequired, n.Code)
	assert.Nil(t, svc.Current())
}

func TestSignup(t *testing.T) {
	provider := &fakeProvider{
		identity: &Identity{ID: "u2", Email: "new@example.com"},
		token:    "signed-token",
	}
	svc := NewService(provider, notify.NewLogNotifier())

	token, n := svc.Signup(context.Background(), "new@example.com", "Password1", "")

	assert.Equal(t, "signed-token", token)
	assert.True(t, n.OK())
	require.NotNil(t, svc.Current())
}

func TestLogout_BroadcastsNil(t *testing.T) {
	provider := &fakeProvider{identity: &Identity{ID: "u1", Email: "reader@example.com"}, token: "tok"}
	svc := NewService(provider, notify.NewLogNotifier())

	var seen []*Identity
	svc.Subscribe(func(id *Identity) { seen = append(seen, id) })

	_, _ = svc.Login(context.Background(), "reader@example.com", "pw")
	n := svc.Logout()

	assert.Equal(t, notify.LevelInfo, n.Level)
	assert.Nil(t, svc.Current())
	require.Len(t, seen, 2)
	assert.NotNil(t, seen[0])
	assert.Nil(t, seen[1])
}

func TestRestore(t *testing.T) {
	svc := NewService(&fakeProvider{}, notify.NewLogNotifier())

	svc.Restore(&Identity{ID: "u1", Email: "reader@example.com"})

	require.NotNil(t, svc.Current())
	assert.Equal(t, "u1", svc.Current().ID)
}

func TestWithDisplayName(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
		want string
	}{
		{name: "provided name kept", id: Identity{Email: "a@b.com", Name: "Alice"}, want: "Alice"},
		{name: "derived from email local part", id: Identity{Email: "reader@example.com"}, want: "reader"},
		{name: "unparseable email falls back", id: Identity{Email: "nodomain"}, want: "User"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withDisplayName(&tt.id)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}
