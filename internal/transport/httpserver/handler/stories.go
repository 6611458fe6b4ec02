package handler

import (
	"errors"
	"net/http"
	"time"

	storiesdomain "donation-hub-go/internal/domain/stories"
	"github.com/go-chi/chi/v5"
)

type storyRequest struct {
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Body        string `json:"body"`
	ImageURL    string `json:"imageUrl"`
	PublishedAt string `json:"publishedAt"`
}

func (r storyRequest) publishedAt() *time.Time {
	return parseDateLenient(r.PublishedAt)
}

func (h *Handlers) ListStories(w http.ResponseWriter, r *http.Request) {
	items, err := h.Stories.List(r.Context())
	if err != nil {
		h.log.InternalError("stories.list: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) GetStory(w http.ResponseWriter, r *http.Request) {
	story, err := h.Stories.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storiesdomain.ErrStoryNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "not found")
			return
		}
		h.log.InternalError("stories.get: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, story)
}

func (h *Handlers) CreateStory(w http.ResponseWriter, r *http.Request) {
	var req storyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	story, err := h.Stories.Create(r.Context(), storiesdomain.UpsertInput{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		PublishedAt: req.publishedAt(),
	})
	if err != nil {
		if errors.Is(err, storiesdomain.ErrTitleRequired) {
			writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
			return
		}
		h.log.InternalError("stories.create: store failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, story)
}

func (h *Handlers) UpdateStory(w http.ResponseWriter, r *http.Request) {
	var req storyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	story, err := h.Stories.Update(r.Context(), chi.URLParam(r, "id"), storiesdomain.UpsertInput{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		PublishedAt: req.publishedAt(),
	})
	if err != nil {
		switch {
		case errors.Is(err, storiesdomain.ErrStoryNotFound):
			writeError(w, http.StatusNotFound, "not_found", "not found")
		case errors.Is(err, storiesdomain.ErrTitleRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		default:
			h.log.InternalError("stories.update: store failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, story)
}

func (h *Handlers) DeleteStory(w http.ResponseWriter, r *http.Request) {
	if err := h.Stories.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, storiesdomain.ErrStoryNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "not found")
			return
		}
		h.log.InternalError("stories.delete: store failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
