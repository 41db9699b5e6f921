package handler

import (
	"net/http"

	"github.com/Iqra544/exam/internal/service"
	"github.com/Iqra544/exam/internal/storage"
	"github.com/Iqra544/exam/internal/token"
)

// RegisterRoutes sets up all HTTP routes on the given mux. The session gate
// (RequireAuth / RequirePage) runs before protected handlers and injects the
// verified claims into the request context; nothing downstream re-verifies
// the cookie.
func RegisterRoutes(
	mux *http.ServeMux,
	tokens *token.Service,
	auth *service.AuthService,
	items *service.ItemService,
	comments *service.CommentService,
	uploads *storage.LocalStore,
	loginLimiter *service.TokenBucket,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, loginLimiter, cookieSecure)
	profileHandler := NewProfileHandler(auth, uploads)
	itemHandler := NewItemHandler(items)
	commentHandler := NewCommentHandler(comments)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	// Pages.
	mux.HandleFunc("GET /{$}", HandleHome)
	mux.HandleFunc("GET /signup", HandleSignupPage)
	mux.Handle("GET /dashboard", RequirePage(tokens, http.HandlerFunc(HandleDashboard)))

	// Uploaded profile images.
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir()))))

	// Auth lifecycle.
	mux.HandleFunc("POST /signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.HandleFunc("POST /logout", authHandler.HandleLogout)
	mux.Handle("GET /me", OptionalAuth(tokens, http.HandlerFunc(authHandler.HandleMe)))

	// Profile.
	mux.Handle("GET /profile", RequireAuth(tokens, http.HandlerFunc(profileHandler.HandleGet)))
	mux.Handle("PATCH /profile", RequireAuth(tokens, http.HandlerFunc(profileHandler.HandleUpdate)))

	// Items.
	mux.Handle("GET /items", RequireAuth(tokens, http.HandlerFunc(itemHandler.HandleList)))
	mux.Handle("POST /items", RequireAuth(tokens, http.HandlerFunc(itemHandler.HandleCreate)))
	mux.HandleFunc("GET /items/{id}", itemHandler.HandleGet)
	mux.Handle("PATCH /items/{id}", RequireAuth(tokens, http.HandlerFunc(itemHandler.HandleUpdate)))
	mux.Handle("DELETE /items/{id}", RequireAuth(tokens, http.HandlerFunc(itemHandler.HandleDelete)))

	// Comments.
	mux.HandleFunc("GET /items/{id}/comments", commentHandler.HandleList)
	mux.HandleFunc("POST /items/{id}/comments", commentHandler.HandleCreate)
}
