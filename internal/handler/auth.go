package handler

import (
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/Iqra544/exam/internal/domain"
	"github.com/Iqra544/exam/internal/service"
)

// AuthHandler handles the authentication lifecycle: signup, login, logout,
// and the "who am I" check.
type AuthHandler struct {
	auth         *service.AuthService
	loginLimiter *service.TokenBucket
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, loginLimiter *service.TokenBucket, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, loginLimiter: loginLimiter, cookieSecure: cookieSecure}
}

// HandleSignup processes a JSON signup request.
// POST /signup
// Request:  {"name":"...","email":"...","password":"..."}
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "All fields required.")
			return
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "Email already registered.")
			return
		}
		slog.Error("signup user", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"msg":  "Signup successful",
		"user": toUserDTO(user),
	})
}

// HandleLogin processes a JSON login request and sets the session cookie.
// POST /login
// Request:  {"email":"...","password":"..."}
// An unknown email returns 404 while a wrong password returns 400; the split
// mirrors the public contract even though it leaks which emails exist.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.loginLimiter.Allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many login attempts. Try again later.")
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	raw, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		if errors.Is(err, domain.ErrBadCredentials) {
			writeError(w, http.StatusBadRequest, "Invalid credentials.")
			return
		}
		slog.Error("login user", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    raw,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours, matches the token TTL
	})

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Login successful"})
}

// HandleLogout clears the session cookie. Idempotent; the server keeps no
// revocation list, so an already-copied token stays valid until expiry.
// POST /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Logged out"})
}

// HandleMe reports the current user, or null when not logged in. Always 200;
// this is the "am I logged in" check, not a protected resource.
// GET /me
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}

	user, err := h.auth.GetUser(r.Context(), claims.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Error("get current user", "error", err)
		}
		writeJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserDTO(user)})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
