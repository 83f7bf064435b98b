package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bibliophile/internal/notify"
	"bibliophile/internal/session"
	"bibliophile/internal/testutil"
)

type stubProvider struct {
	identity *session.Identity
	token    string
	err      error
}

func (s *stubProvider) SignIn(ctx context.Context, email, password string) (*session.Identity, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.identity, s.token, nil
}

func (s *stubProvider) SignUp(ctx context.Context, email, password, name string) (*session.Identity, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.identity, s.token, nil
}

func TestAuthLogin(t *testing.T) {
	registry, libRepo, listRepo := newTestRegistry(t)
	// Login activates the user's scope through the session subscriber.
	expectScopeLoad(libRepo, listRepo, nil)

	provider := &stubProvider{
		identity: &session.Identity{ID: testutil.TestIdentity.ID, Email: testutil.TestIdentity.Email},
		token:    "signed-token",
	}
	handler := NewAuthHandler(provider, registry, notify.NewLogNotifier())

	w := httptest.NewRecorder()
	handler.Login(w, testutil.NewRequest(http.MethodPost, "/auth/login", map[string]string{
		"email":    testutil.TestIdentity.Email,
		"password": "Password1",
	}))

	res := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, res.Code)

	data := res.Body["data"].(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, testutil.TestIdentity.ID, user["id"])
	// Display name falls back to the email local part.
	assert.Equal(t, "reader", user["name"])
}

func TestAuthLogin_BadCredentials(t *testing.T) {
	registry, _, _ := newTestRegistry(t)
	handler := NewAuthHandler(&stubProvider{err: session.ErrInvalidCredentials}, registry, notify.NewLogNotifier())

	w := httptest.NewRecorder()
	handler.Login(w, testutil.NewRequest(http.MethodPost, "/auth/login", map[string]string{
		"email":    testutil.TestIdentity.Email,
		"password": "wrong",
	}))

	res := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	errBody := res.Body["error"].(map[string]interface{})
	assert.Equal(t, "AUTH_REQUIRED", errBody["code"])
}

func TestAuthLogin_InvalidEmail(t *testing.T) {
	registry, _, _ := newTestRegistry(t)
	handler := NewAuthHandler(&stubProvider{}, registry, notify.NewLogNotifier())

	w := httptest.NewRecorder()
	handler.Login(w, testutil.NewRequest(http.MethodPost, "/auth/login", map[string]string{
		"email":    "not-an-email",
		"password": "Password1",
	}))

	res := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	errBody := res.Body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errBody["code"])
}

func TestAuthSignup(t *testing.T) {
	registry, libRepo, listRepo := newTestRegistry(t)
	expectScopeLoad(libRepo, listRepo, nil)

	provider := &stubProvider{
		identity: &session.Identity{ID: testutil.TestIdentity.ID, Email: testutil.TestIdentity.Email, Name: "Reader"},
		token:    "signed-token",
	}
	handler := NewAuthHandler(provider, registry, notify.NewLogNotifier())

	w := httptest.NewRecorder()
	handler.Signup(w, testutil.NewRequest(http.MethodPost, "/auth/signup", map[string]string{
		"email":    testutil.TestIdentity.Email,
		"password": "Password1",
		"name":     "Reader",
	}))

	res := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusCreated, res.Code)
	data := res.Body["data"].(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])
}

func TestAuthSignup_ShortPassword(t *testing.T) {
	registry, _, _ := newTestRegistry(t)
	handler := NewAuthHandler(&stubProvider{}, registry, notify.NewLogNotifier())

	w := httptest.NewRecorder()
	handler.Signup(w, testutil.NewRequest(http.MethodPost, "/auth/signup", map[string]string{
		"email":    testutil.TestIdentity.Email,
		"password": "short",
	}))

	res := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestAuthLogout_DropsScope(t *testing.T) {
	registry, libRepo, listRepo := newTestRegistry(t)
	// Scope is built once, dropped at logout, and rebuilt on the next
	// request.
	expectScopeLoad(libRepo, listRepo, nil)
	expectScopeLoad(libRepo, listRepo, nil)

	user := testutil.TestIdentity
	registry.For(context.Background(), &user)

	handler := NewAuthHandler(&stubProvider{}, registry, notify.NewLogNotifier())
	w := httptest.NewRecorder()
	handler.Logout(w, authed(testutil.NewRequest(http.MethodPost, "/auth/logout", nil)))

	res := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, res.Code)
	meta := res.Body["meta"].(map[string]interface{})
	assert.Equal(t, "You have been logged out", meta["message"])

	registry.For(context.Background(), &user)
}

func TestAuthMe(t *testing.T) {
	registry, _, _ := newTestRegistry(t)
	handler := NewAuthHandler(&stubProvider{}, registry, notify.NewLogNotifier())

	w := httptest.NewRecorder()
	handler.Me(w, authed(testutil.NewRequest(http.MethodGet, "/me", nil)))

	res := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, res.Code)
	data := res.Body["data"].(map[string]interface{})
	assert.Equal(t, testutil.TestIdentity.ID, data["id"])
	assert.Equal(t, "reader", data["name"])
}
