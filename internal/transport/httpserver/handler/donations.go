package handler

import (
	"bytes"
	"net/http"

	donationsdomain "donation-hub-go/internal/domain/donations"
	"donation-hub-go/internal/domain/reports"
)

type createDonationRequest struct {
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	DonorName  string  `json:"donorName"`
	DonorEmail string  `json:"donorEmail"`
	Source     string  `json:"source"`
	Category   string  `json:"category"`
	CampaignID string  `json:"campaignId"`
}

// CreateDonation handles the public donation submission.
func (h *Handlers) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req createDonationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	donation, err := h.Donations.Create(r.Context(), donationsdomain.CreateInput{
		Amount:     req.Amount,
		Currency:   req.Currency,
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		Source:     req.Source,
		Category:   req.Category,
		CampaignID: req.CampaignID,
	})
	if err != nil {
		h.log.InternalError("donations.create: store failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, donation)
}

// ListDonations returns the collection newest first for the admin table.
func (h *Handlers) ListDonations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := donationsdomain.ListFilter{
		Limit:  parseIntParam(query.Get("limit"), 0),
		Offset: parseIntParam(query.Get("offset"), 0),
	}

	items, total, err := h.Donations.List(r.Context(), filter)
	if err != nil {
		h.log.InternalError("donations.list: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
	})
}

// DonationsAnalytics serves the dashboard overview. Bad date parameters do
// not fail the request; they fall back to the defaults.
func (h *Handlers) DonationsAnalytics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start := parseDateLenient(query.Get("start"))
	end := parseDateLenient(query.Get("end"))

	overview, err := h.Analytics.Overview(r.Context(), start, end)
	if err != nil {
		h.log.InternalError("donations.analytics: aggregation failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

func (h *Handlers) DonationsBySource(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Analytics.SourceBreakdown(r.Context())
	if err != nil {
		h.log.InternalError("donations.by_source: aggregation failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) DonationsStatusBreakdown(w http.ResponseWriter, r *http.Request) {
	slices, err := h.Analytics.StatusBreakdown(r.Context())
	if err != nil {
		h.log.InternalError("donations.status_breakdown: aggregation failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, slices)
}

// ExportDonations streams the full donation report. Every format currently
// receives CSV bytes; only the download filename follows the request.
func (h *Handlers) ExportDonations(w http.ResponseWriter, r *http.Request) {
	format := reports.ParseFormat(r.URL.Query().Get("format"))

	items, err := h.Donations.ListAll(r.Context())
	if err != nil {
		h.log.InternalError("donations.export: load failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	var buf bytes.Buffer
	if err := reports.WriteDonationsCSV(&buf, items); err != nil {
		h.log.InternalError("donations.export: render failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
