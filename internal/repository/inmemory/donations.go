package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	analyticsdomain "donation-hub-go/internal/domain/analytics"
	donationsdomain "donation-hub-go/internal/domain/donations"
)

// InMemoryDonationStore holds donations newest first behind an RWMutex.
// It implements both the donations and analytics repositories, so handler
// tests can run against the full API without Postgres.
type InMemoryDonationStore struct {
	mu    sync.RWMutex
	items []donationsdomain.Donation
}

func NewInMemoryDonationStore() *InMemoryDonationStore {
	return &InMemoryDonationStore{}
}

func (s *InMemoryDonationStore) Create(ctx context.Context, donation *donationsdomain.Donation) error {
	s.mu.Lock()
	s.items = append([]donationsdomain.Donation{*donation}, s.items...)
	s.mu.Unlock()
	return nil
}

func (s *InMemoryDonationStore) List(ctx context.Context, filter donationsdomain.ListFilter) ([]donationsdomain.Donation, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := int64(len(s.items))
	items := s.items

	if filter.Offset > 0 {
		if filter.Offset >= len(items) {
			return []donationsdomain.Donation{}, total, nil
		}
		items = items[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(items) {
		items = items[:filter.Limit]
	}

	result := make([]donationsdomain.Donation, len(items))
	copy(result, items)
	return result, total, nil
}

func (s *InMemoryDonationStore) ListAll(ctx context.Context) ([]donationsdomain.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]donationsdomain.Donation, len(s.items))
	copy(result, s.items)
	return result, nil
}

func (s *InMemoryDonationStore) Summary(ctx context.Context, from, to time.Time) (analyticsdomain.SummaryResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result analyticsdomain.SummaryResult
	for _, d := range s.items {
		if inRange(d.CreatedAt, from, to) {
			result.TotalAmount += d.Amount
			result.TotalCount++
		}
	}
	return result, nil
}

func (s *InMemoryDonationStore) DailyTotals(ctx context.Context, from, to time.Time) ([]analyticsdomain.DailyRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]float64)
	for _, d := range s.items {
		if inRange(d.CreatedAt, from, to) {
			totals[d.CreatedAt.UTC().Format("2006-01-02")] += d.Amount
		}
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]analyticsdomain.DailyRow, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, analyticsdomain.DailyRow{Date: key, Total: totals[key]})
	}
	return rows, nil
}

func (s *InMemoryDonationStore) StatusCounts(ctx context.Context) ([]analyticsdomain.StatusCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	var order []string
	for _, d := range s.items {
		if _, seen := counts[d.Status]; !seen {
			order = append(order, d.Status)
		}
		counts[d.Status]++
	}

	rows := make([]analyticsdomain.StatusCount, 0, len(order))
	for _, status := range order {
		rows = append(rows, analyticsdomain.StatusCount{Status: status, Count: counts[status]})
	}
	return rows, nil
}

func (s *InMemoryDonationStore) SourceTotals(ctx context.Context) ([]analyticsdomain.SourceRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]float64)
	var order []string
	for _, d := range s.items {
		if _, seen := totals[d.Source]; !seen {
			order = append(order, d.Source)
		}
		totals[d.Source] += d.Amount
	}

	rows := make([]analyticsdomain.SourceRow, 0, len(order))
	for _, source := range order {
		rows = append(rows, analyticsdomain.SourceRow{Source: source, Total: totals[source]})
	}
	return rows, nil
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
