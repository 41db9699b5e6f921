package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Iqra544/exam/internal/domain"
	"github.com/Iqra544/exam/internal/service"
	"github.com/Iqra544/exam/internal/storage"
)

const maxImageSize = 5 << 20 // 5MB

// ProfileHandler serves and updates the authenticated user's profile,
// including the profile image upload.
type ProfileHandler struct {
	auth    *service.AuthService
	uploads *storage.LocalStore
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(auth *service.AuthService, uploads *storage.LocalStore) *ProfileHandler {
	return &ProfileHandler{auth: auth, uploads: uploads}
}

// HandleGet returns the caller's profile.
// GET /profile
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	user, err := h.auth.GetUser(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found.")
			return
		}
		slog.Error("get profile", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserDTO(user)})
}

// HandleUpdate applies a multipart profile edit. All fields are optional:
// name, email, password (rehashed only if at least 6 characters), image.
// PATCH /profile
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data.")
		return
	}

	upd := service.ProfileUpdate{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	imagePath, err := h.saveImage(r)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("save profile image", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error.")
		return
	}
	upd.ImagePath = imagePath

	user, err := h.auth.UpdateProfile(r.Context(), claims.UserID, upd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found.")
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, "Email already registered.")
		default:
			slog.Error("update profile", "error", err)
			writeError(w, http.StatusInternalServerError, "Server error.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":  "Profile updated successfully",
		"user": toUserDTO(user),
	})
}

// saveImage stores an uploaded image if one was supplied and returns its
// relative path, or "" when the form carries no image field.
func (h *ProfileHandler) saveImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxImageSize {
		return "", fmt.Errorf("%w: image exceeds 5MB limit", domain.ErrInvalidInput)
	}

	// Sniff the real content type; the multipart header is client-controlled.
	mtype := mimetype.Detect(data)
	switch mtype.String() {
	case "image/jpeg", "image/png", "image/webp":
	default:
		return "", fmt.Errorf("%w: only JPEG, PNG, and WebP images are accepted", domain.ErrInvalidInput)
	}

	return h.uploads.Save(header.Filename, data)
}
