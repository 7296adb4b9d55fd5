package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"daybook/internal/domain"
	"daybook/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// HandleRegister processes a JSON sign-up request. A successful sign-up also
// starts a session, so the client lands signed in.
// POST /api/auth/register
// Request:  {"email":"...","password":"..."}
// Response: {"user": {...}}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "An account with that email already exists.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("register user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	token, _, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		slog.Error("login after register", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	h.setAuthCookie(w, token)

	writeJSON(w, http.StatusCreated, map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleLogin processes a JSON login request.
// POST /api/auth/login
// Request:  {"email":"...","password":"..."}
// Response: {"user": {...}}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password.")
			return
		}
		slog.Error("login user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	h.setAuthCookie(w, token)

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleLogout clears the auth cookie. Safe to call without a session.
// POST /api/auth/logout
// Response: 204 No Content
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	w.WriteHeader(http.StatusNoContent)
}

// HandleMe returns the currently authenticated user, or a null user when no
// session resolves. A stale or orphaned cookie is not an error condition.
// GET /api/auth/me
// Response: {"user": {...}} or {"user": null}
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(user),
	})
}

func (h *AuthHandler) setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours
	})
}
