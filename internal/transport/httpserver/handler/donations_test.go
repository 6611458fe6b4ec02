package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	analyticsdomain "donation-hub-go/internal/domain/analytics"
	donationsdomain "donation-hub-go/internal/domain/donations"
	"donation-hub-go/internal/repository/inmemory"
	"donation-hub-go/pkg/logger"
)

func newTestHandlers(store *inmemory.InMemoryDonationStore) *Handlers {
	log := logger.New(io.Discard, slog.LevelError, "text")
	return New(
		donationsdomain.NewService(store),
		analyticsdomain.NewService(store),
		nil, nil, nil, nil, nil,
		log,
	)
}

func TestCreateDonationAppearsInAnalytics(t *testing.T) {
	store := inmemory.NewInMemoryDonationStore()
	h := newTestHandlers(store)

	body := `{"amount": 25.5, "donorName": "Sam", "source": "Website"}`
	req := httptest.NewRequest(http.MethodPost, "/api/donations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateDonation(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var created donationsdomain.Donation
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created donation: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created donation has empty id")
	}
	if created.Status != string(donationsdomain.StatusCompleted) {
		t.Fatalf("status = %q, want %q", created.Status, donationsdomain.StatusCompleted)
	}
	if created.Currency != "USD" {
		t.Fatalf("currency = %q, want default USD", created.Currency)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/donations/analytics", nil)
	rec = httptest.NewRecorder()
	h.DonationsAnalytics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("analytics status = %d, want %d", rec.Code, http.StatusOK)
	}

	var overview analyticsdomain.Overview
	if err := json.Unmarshal(rec.Body.Bytes(), &overview); err != nil {
		t.Fatalf("decode overview: %v", err)
	}
	if overview.TotalAmount != 25.5 {
		t.Fatalf("totalAmount = %v, want 25.5", overview.TotalAmount)
	}
	if overview.TotalCount != 1 {
		t.Fatalf("totalCount = %d, want 1", overview.TotalCount)
	}
	if len(overview.Daily) != 1 {
		t.Fatalf("daily has %d points, want 1 (today)", len(overview.Daily))
	}
	if overview.Daily[0].Total != 25.5 {
		t.Fatalf("today's bucket = %v, want 25.5", overview.Daily[0].Total)
	}
	if overview.PeriodAmount != 25.5 {
		t.Fatalf("periodAmount = %v, want 25.5", overview.PeriodAmount)
	}
}

func TestCreateDonationCoercesNegativeAmount(t *testing.T) {
	store := inmemory.NewInMemoryDonationStore()
	h := newTestHandlers(store)

	body := `{"amount": -50, "currency": "eur"}`
	req := httptest.NewRequest(http.MethodPost, "/api/donations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateDonation(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: amounts never reject a submission", rec.Code, http.StatusCreated)
	}

	var created donationsdomain.Donation
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created donation: %v", err)
	}
	if created.Amount != 0 {
		t.Fatalf("amount = %v, want 0 after coercion", created.Amount)
	}
	if created.Currency != "EUR" {
		t.Fatalf("currency = %q, want EUR", created.Currency)
	}
}

func TestListDonationsNewestFirstWithTotal(t *testing.T) {
	store := inmemory.NewInMemoryDonationStore()
	h := newTestHandlers(store)

	for _, amount := range []string{"10", "20", "30"} {
		req := httptest.NewRequest(http.MethodPost, "/api/donations", strings.NewReader(`{"amount": `+amount+`}`))
		rec := httptest.NewRecorder()
		h.CreateDonation(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed create status = %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/donations?limit=1", nil)
	rec := httptest.NewRecorder()
	h.ListDonations(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want %d", rec.Code, http.StatusOK)
	}

	var payload struct {
		Items []donationsdomain.Donation `json:"items"`
		Total int64                      `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode list payload: %v", err)
	}
	if payload.Total != 3 {
		t.Fatalf("total = %d, want 3", payload.Total)
	}
	if len(payload.Items) != 1 {
		t.Fatalf("items = %d, want 1 with limit=1", len(payload.Items))
	}
	if payload.Items[0].Amount != 30 {
		t.Fatalf("first item amount = %v, want the most recent (30)", payload.Items[0].Amount)
	}
}

func TestExportServesCSVForEveryFormat(t *testing.T) {
	store := inmemory.NewInMemoryDonationStore()
	h := newTestHandlers(store)

	req := httptest.NewRequest(http.MethodPost, "/api/donations", strings.NewReader(`{"amount": 12, "donorName": "Alex"}`))
	rec := httptest.NewRecorder()
	h.CreateDonation(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("seed create status = %d", rec.Code)
	}

	wantHeader := "id,amount,currency,donorName,donorEmail,source,campaignId,category,status,createdAt"

	for _, format := range []string{"csv", "xlsx", "pdf", "bogus"} {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/donations/export?format="+format, nil)
		rec := httptest.NewRecorder()
		h.ExportDonations(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("format %q: status = %d, want %d", format, rec.Code, http.StatusOK)
		}
		if got := rec.Header().Get("Content-Type"); got != "text/csv" {
			t.Fatalf("format %q: content type = %q, want text/csv", format, got)
		}
		firstLine, _, _ := strings.Cut(rec.Body.String(), "\n")
		if firstLine != wantHeader {
			t.Fatalf("format %q: header row = %q, want %q", format, firstLine, wantHeader)
		}
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/donations/export?format=xlsx", nil)
	rec = httptest.NewRecorder()
	h.ExportDonations(rec, req)
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="donations-report.xlsx"` {
		t.Fatalf("content disposition = %q", got)
	}
}
