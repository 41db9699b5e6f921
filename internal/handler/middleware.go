package handler

import (
	"context"
	"net/http"

	"github.com/Iqra544/exam/internal/token"
)

// CookieName is the session cookie holding the signed token.
const CookieName = "token"

type contextKey string

const claimsContextKey contextKey = "claims"

// ClaimsFromContext extracts the verified session claims from the request
// context. Returns nil if the request is unauthenticated.
func ClaimsFromContext(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*token.Claims)
	return claims
}

// RequireAuth protects API routes. It reads the session cookie, verifies the
// token, and injects the claims into the request context; handlers never
// re-verify. Missing or invalid tokens get a 401 regardless of reason.
func RequireAuth(tokens *token.Service, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := authenticateRequest(r, tokens)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated.")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePage gates protected page routes. Unlike RequireAuth it redirects
// to the public entry page instead of returning 401, so a browser with a
// missing or expired session lands back on the login screen. The check is
// stateless and never extends the token's expiry.
func RequirePage(tokens *token.Service, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := authenticateRequest(r, tokens)
		if err != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attempts to authenticate but does not block unauthenticated
// requests. If a valid token is present, claims are injected into context;
// otherwise the request proceeds without them.
func OptionalAuth(tokens *token.Service, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, err := authenticateRequest(r, tokens); err == nil {
			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func authenticateRequest(r *http.Request, tokens *token.Service) (*token.Claims, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, err
	}

	claims, err := tokens.Verify(cookie.Value)
	if err != nil {
		return nil, err
	}

	return &claims, nil
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
