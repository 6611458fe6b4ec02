package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	contentdomain "donation-hub-go/internal/domain/content"
	"github.com/go-chi/chi/v5"
	"gorm.io/datatypes"
)

func (h *Handlers) GetContentSection(w http.ResponseWriter, r *http.Request) {
	section, err := h.Content.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		if errors.Is(err, contentdomain.ErrSectionNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "not found")
			return
		}
		h.log.InternalError("content.get: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, section)
}

// PutContentSection stores the request body verbatim as the section value.
// The body must be valid JSON; its shape is owned by the admin dashboard.
func (h *Handlers) PutContentSection(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil || !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "invalid_request", "body must be valid JSON")
		return
	}

	section, err := h.Content.Put(r.Context(), chi.URLParam(r, "key"), datatypes.JSON(body))
	if err != nil {
		if errors.Is(err, contentdomain.ErrInvalidKey) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid section key")
			return
		}
		h.log.InternalError("content.put: store failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, section)
}
