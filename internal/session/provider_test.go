package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bibliophile/internal/auth"
	"bibliophile/internal/entity"
)

type fakeUserStore struct {
	users map[string]entity.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]entity.User{}}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, email, name, passwordHash string) (entity.User, error) {
	if _, ok := f.users[email]; ok {
		return entity.User{}, errors.New("duplicate email")
	}
	u := entity.User{ID: "user-" + email, Email: email, Name: name, Password: passwordHash}
	f.users[email] = u
	return u, nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return entity.User{}, errors.New("not found")
	}
	return u, nil
}

func TestSignUpThenSignIn(t *testing.T) {
	store := newFakeUserStore()
	provider := NewJWTProvider(store, "test-secret", time.Hour)
	ctx := context.Background()

	id, token, err := provider.SignUp(ctx, "reader@example.com", "Password1", "Reader")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.NotEmpty(t, token)
	assert.Equal(t, "reader@example.com", id.Email)

	// Stored hash is never the plaintext.
	assert.NotEqual(t, "Password1", store.users["reader@example.com"].Password)

	id, token, err = provider.SignIn(ctx, "reader@example.com", "Password1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, id.ID, claims.Sub)
	assert.Equal(t, "reader@example.com", claims.Email)
}

func TestSignIn_WrongPassword(t *testing.T) {
	store := newFakeUserStore()
	provider := NewJWTProvider(store, "test-secret", time.Hour)
	ctx := context.Background()

	_, _, err := provider.SignUp(ctx, "reader@example.com", "Password1", "")
	require.NoError(t, err)

	_, _, err = provider.SignIn(ctx, "reader@example.com", "Password2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	provider := NewJWTProvider(newFakeUserStore(), "test-secret", time.Hour)

	_, _, err := provider.SignIn(context.Background(), "nobody@example.com", "Password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUp_WeakPasswordRejected(t *testing.T) {
	store := newFakeUserStore()
	provider := NewJWTProvider(store, "test-secret", time.Hour)

	_, _, err := provider.SignUp(context.Background(), "reader@example.com", "short", "")
	require.Error(t, err)
	assert.Empty(t, store.users)
}
