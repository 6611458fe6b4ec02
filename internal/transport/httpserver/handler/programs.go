package handler

import (
	"errors"
	"net/http"

	programsdomain "donation-hub-go/internal/domain/programs"
	"github.com/go-chi/chi/v5"
)

type programRequest struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	SortOrder   int    `json:"sortOrder"`
}

func (h *Handlers) ListPrograms(w http.ResponseWriter, r *http.Request) {
	items, err := h.Programs.List(r.Context())
	if err != nil {
		h.log.InternalError("programs.list: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req programRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	program, err := h.Programs.Create(r.Context(), programsdomain.UpsertInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, programsdomain.ErrTitleRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
			return
		}
		h.log.InternalError("programs.create: store failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, program)
}

func (h *Handlers) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	var req programRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	program, err := h.Programs.Update(r.Context(), chi.URLParam(r, "id"), programsdomain.UpsertInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, programsdomain.ErrProgramNotFound):
			writeError(w, http.StatusNotFound, "not_found", "not found")
		case errors.Is(err, programsdomain.ErrTitleRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		default:
			h.log.InternalError("programs.update: store failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, program)
}

func (h *Handlers) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	if err := h.Programs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, programsdomain.ErrProgramNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "not found")
			return
		}
		h.log.InternalError("programs.delete: store failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
