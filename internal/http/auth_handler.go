package http

import (
	"encoding/json"
	"net/http"

	"bibliophile/internal/httpx"
	"bibliophile/internal/notify"
	"bibliophile/internal/session"
)

type AuthHandler struct {
	provider session.Provider
	registry *ServiceRegistry
	notifier notify.Notifier
}

func NewAuthHandler(provider session.Provider, registry *ServiceRegistry, notifier notify.Notifier) *AuthHandler {
	return &AuthHandler{provider: provider, registry: registry, notifier: notifier}
}

// newSession builds a session store wired to the registry's change
// subscriber, so login activates the user's service scope.
func (h *AuthHandler) newSession() *session.Service {
	s := session.NewService(h.provider, h.notifier)
	s.Subscribe(h.registry.SessionSubscriber())
	return s
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(input); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", toErrorDetails(validationErrors))
		return
	}

	sess := h.newSession()
	token, n := sess.Login(r.Context(), input.Email, input.Password)
	if !n.OK() {
		JSONError(w, http.StatusUnauthorized, n.Code, n.Message, nil)
		return
	}

	JSONSuccess(w, map[string]any{
		"token": token,
		"user":  sess.Current(),
	}, map[string]string{"message": n.Message})
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input signupRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(input); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", toErrorDetails(validationErrors))
		return
	}

	sess := h.newSession()
	token, n := sess.Signup(r.Context(), input.Email, input.Password, input.Name)
	if !n.OK() {
		JSONError(w, http.StatusBadRequest, n.Code, n.Message, nil)
		return
	}

	JSONSuccessCreated(w, map[string]any{
		"token": token,
		"user":  sess.Current(),
	})
}

// Logout tears down the user's service scope. Tokens are not tracked
// server-side; the client discards its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.NewService(h.provider, h.notifier)
	n := sess.Logout()
	h.registry.Drop(httpx.UserIDFrom(r))

	JSONSuccess(w, nil, map[string]string{"message": n.Message})
}

// Me returns the identity carried by the token, with the display name
// derived the same way the session store derives it.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := session.NewService(h.provider, h.notifier)
	sess.Restore(&session.Identity{ID: httpx.UserIDFrom(r), Email: httpx.UserEmailFrom(r)})

	JSONSuccess(w, sess.Current(), nil)
}
