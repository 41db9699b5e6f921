package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Iqra544/exam/internal/domain"
	"github.com/Iqra544/exam/internal/service"
)

// ItemHandler handles item CRUD requests.
type ItemHandler struct {
	items *service.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(items *service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

// HandleList returns the caller's items, newest first.
// GET /items
func (h *ItemHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	items, err := h.items.ListByOwner(r.Context(), claims.UserID)
	if err != nil {
		slog.Error("list items", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toItemDTOs(items)})
}

// HandleCreate creates an item owned by the caller.
// POST /items
// Request: {"title":"...","description":"..."}
func (h *ItemHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	item, err := h.items.Create(r.Context(), claims.UserID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create item", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"item": toItemDTO(item)})
}

// HandleGet returns a single item. No session required; item detail pages
// are public.
// GET /items/{id}
func (h *ItemHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.items.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Item not found.")
			return
		}
		slog.Error("get item", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"item": toItemDTO(item)})
}

// HandleUpdate modifies an item. Only the owner may update; a valid session
// belonging to another user gets a 403.
// PATCH /items/{id}
func (h *ItemHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	item, err := h.items.Update(r.Context(), claims.UserID, id, req.Title, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Item not found.")
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, http.StatusForbidden, "You do not own this item.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("update item", "error", err)
			writeError(w, http.StatusInternalServerError, "Server error.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"msg":  "Item updated successfully",
		"item": toItemDTO(item),
	})
}

// HandleDelete removes an item. Only the owner may delete.
// DELETE /items/{id}
func (h *ItemHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.items.Delete(r.Context(), claims.UserID, id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Item not found.")
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, http.StatusForbidden, "You do not own this item.")
		default:
			slog.Error("delete item", "error", err)
			writeError(w, http.StatusInternalServerError, "Server error.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "Item deleted successfully"})
}

// itemID parses the {id} path segment, writing a 404 for garbage values so
// unknown and unparseable ids are indistinguishable to the client.
func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Item not found.")
		return 0, false
	}
	return id, true
}
