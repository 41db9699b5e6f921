package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Iqra544/exam/internal/domain"
	"github.com/Iqra544/exam/internal/service"
)

// CommentHandler handles listing and posting comments on items. Neither
// operation requires a session.
type CommentHandler struct {
	comments *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// HandleList returns an item's comments, newest first.
// GET /items/{id}/comments
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	comments, err := h.comments.ListByItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Item not found.")
			return
		}
		slog.Error("list comments", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"comments": toCommentDTOs(comments)})
}

// HandleCreate posts a comment on an item.
// POST /items/{id}/comments
// Request: {"author":"...","text":"..."}
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var req struct {
		Author string `json:"author"`
		Text   string `json:"text"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	comment, err := h.comments.Create(r.Context(), id, req.Author, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Author and comment text are required.")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Item not found.")
		default:
			slog.Error("create comment", "error", err)
			writeError(w, http.StatusInternalServerError, "Server error.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":     "Comment added successfully",
		"comment": toCommentDTO(comment),
	})
}
