package handler

import (
	"errors"
	"net/http"

	messagesdomain "donation-hub-go/internal/domain/messages"
	"github.com/go-chi/chi/v5"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact handles the public contact form.
func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	message, err := h.Messages.Submit(r.Context(), messagesdomain.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		if errors.Is(err, messagesdomain.ErrInvalidMessage) {
			writeError(w, http.StatusBadRequest, "invalid_request", "name, email and message are required")
			return
		}
		h.log.InternalError("messages.submit: store failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, message)
}

func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	items, err := h.Messages.List(r.Context())
	if err != nil {
		h.log.InternalError("messages.list: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Messages.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, messagesdomain.ErrMessageNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "not found")
			return
		}
		h.log.InternalError("messages.mark_read: store failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.Messages.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, messagesdomain.ErrMessageNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "not found")
			return
		}
		h.log.InternalError("messages.delete: store failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
