package handler

import (
	"errors"
	"net/http"

	campaignsdomain "donation-hub-go/internal/domain/campaigns"
	"github.com/go-chi/chi/v5"
)

type campaignRequest struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Summary     string  `json:"summary"`
	Description string  `json:"description"`
	Goal        float64 `json:"goal"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Active      bool    `json:"active"`
}

func (h *Handlers) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	items, err := h.Campaigns.ListPublic(r.Context())
	if err != nil {
		h.log.InternalError("campaigns.list: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) ListCampaignsAdmin(w http.ResponseWriter, r *http.Request) {
	items, err := h.Campaigns.ListAll(r.Context())
	if err != nil {
		h.log.InternalError("campaigns.list_admin: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) GetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.Campaigns.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, campaignsdomain.ErrCampaignNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "not found")
			return
		}
		h.log.InternalError("campaigns.get: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *Handlers) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	campaign, err := h.Campaigns.Create(r.Context(), campaignsdomain.CreateInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Summary:     req.Summary,
		Description: req.Description,
		Goal:        req.Goal,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Active:      req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, campaignsdomain.ErrTitleRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		case errors.Is(err, campaignsdomain.ErrSlugTaken):
			writeError(w, http.StatusConflict, "slug_taken", "campaign slug already exists")
		default:
			h.log.InternalError("campaigns.create: store failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, campaign)
}

func (h *Handlers) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	campaign, err := h.Campaigns.Update(r.Context(), campaignsdomain.UpdateInput{
		ID:          chi.URLParam(r, "id"),
		Title:       req.Title,
		Slug:        req.Slug,
		Summary:     req.Summary,
		Description: req.Description,
		Goal:        req.Goal,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Active:      req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, campaignsdomain.ErrCampaignNotFound):
			writeError(w, http.StatusNotFound, "not_found", "not found")
		case errors.Is(err, campaignsdomain.ErrTitleRequired):
			writeError(w, http.StatusBadRequest, "invalid_request", "title is required")
		case errors.Is(err, campaignsdomain.ErrSlugTaken):
			writeError(w, http.StatusConflict, "slug_taken", "campaign slug already exists")
		default:
			h.log.InternalError("campaigns.update: store failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, campaign)
}

func (h *Handlers) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.Campaigns.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, campaignsdomain.ErrCampaignNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "not found")
			return
		}
		h.log.InternalError("campaigns.delete: store failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
