package donations

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create records a public donation submission. Submissions are never
// rejected over the amount: a missing, NaN, or negative amount records a
// zero-value gift. Status is always Completed at creation time.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Donation, error) {
	amount := input.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		amount = 0
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "USD"
	}

	donation := Donation{
		ID:         uuid.NewString(),
		Amount:     amount,
		Currency:   currency,
		DonorName:  strings.TrimSpace(input.DonorName),
		DonorEmail: strings.TrimSpace(input.DonorEmail),
		Source:     strings.TrimSpace(input.Source),
		Status:     string(StatusCompleted),
		Category:   strings.TrimSpace(input.Category),
		CampaignID: strings.TrimSpace(input.CampaignID),
		CreatedAt:  s.now().UTC(),
	}

	if err := s.repo.Create(ctx, &donation); err != nil {
		return nil, err
	}
	return &donation, nil
}

// List returns donations newest first.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Donation, int64, error) {
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []Donation{}
	}
	return items, total, nil
}

// ListAll returns the full collection newest first, for the export report.
func (s *Service) ListAll(ctx context.Context) ([]Donation, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Donation{}
	}
	return items, nil
}
