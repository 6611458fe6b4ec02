package analytics

import (
	"context"
	"math"
	"time"

	donationsdomain "donation-hub-go/internal/domain/donations"
)

const dateKeyLayout = "2006-01-02"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Overview computes the analytics payload for an optional date window.
// A nil bound is an absent or unparsable query parameter; it falls back to
// a default instead of failing. The summary and the daily series default
// differently on purpose: the summary covers everything up to now, the
// daily series collapses to today.
func (s *Service) Overview(ctx context.Context, start, end *time.Time) (Overview, error) {
	now := s.now().UTC()

	summaryFrom, summaryTo := s.summaryBounds(start, end, now)
	summary, err := s.repo.Summary(ctx, summaryFrom, summaryTo)
	if err != nil {
		return Overview{}, err
	}

	dailyFrom, dailyTo := s.dailyBounds(start, end, now)
	daily, err := s.buildDailySeries(ctx, dailyFrom, dailyTo)
	if err != nil {
		return Overview{}, err
	}

	periodAmount := 0.0
	for _, point := range daily {
		periodAmount += point.Total
	}

	return Overview{
		TotalAmount:  summary.TotalAmount,
		TotalCount:   summary.TotalCount,
		PeriodAmount: periodAmount,
		Daily:        daily,
	}, nil
}

// summaryBounds defaults to the unbounded past and the current instant.
func (s *Service) summaryBounds(start, end *time.Time, now time.Time) (time.Time, time.Time) {
	from := time.Time{}
	if start != nil {
		from = *start
	}
	to := now
	if end != nil {
		to = *end
	}
	return from, to
}

// dailyBounds defaults to today: from the start of the current UTC day to
// the current instant, yielding a single-day series covering donations made
// earlier today when the caller sends no range. Caller-supplied bounds are
// used untruncated.
func (s *Service) dailyBounds(start, end *time.Time, now time.Time) (time.Time, time.Time) {
	from := truncateToUTCDay(now)
	if start != nil {
		from = *start
	}
	to := now
	if end != nil {
		to = *end
	}
	return from, to
}

// buildDailySeries zero-fills the sparse per-day sums into one point per
// calendar day from the truncated start day to the truncated end day,
// inclusive and ascending. Inclusion uses the untruncated from/to instants.
// An inverted range yields an empty series.
func (s *Service) buildDailySeries(ctx context.Context, from, to time.Time) ([]DailyPoint, error) {
	startDay := truncateToUTCDay(from)
	endDay := truncateToUTCDay(to)
	if endDay.Before(startDay) {
		return []DailyPoint{}, nil
	}

	rows, err := s.repo.DailyTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(rows))
	for _, row := range rows {
		totals[row.Date] += row.Total
	}

	days := int(endDay.Sub(startDay).Hours()/24) + 1
	series := make([]DailyPoint, 0, days)
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateKeyLayout)
		series = append(series, DailyPoint{Date: key, Total: totals[key]})
	}

	return series, nil
}

// StatusBreakdown groups the entire collection by normalized status and
// reports each group's share of the total count as a rounded percentage.
// Each percentage is rounded independently, so the sum can drift a few
// points from 100; callers must not expect exact totals.
func (s *Service) StatusBreakdown(ctx context.Context) ([]StatusSlice, error) {
	counts, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, row := range counts {
		total += row.Count
	}
	if total == 0 {
		return []StatusSlice{}, nil
	}

	// Merge raw groups onto the closed status set, keeping first-occurrence
	// order. Distinct unrecognized values all land in Other.
	merged := make(map[donationsdomain.Status]int64, len(counts))
	order := make([]donationsdomain.Status, 0, len(counts))
	for _, row := range counts {
		status := donationsdomain.NormalizeStatus(row.Status)
		if _, seen := merged[status]; !seen {
			order = append(order, status)
		}
		merged[status] += row.Count
	}

	slices := make([]StatusSlice, 0, len(order))
	for _, status := range order {
		percent := float64(merged[status]) / float64(total) * 100
		slices = append(slices, StatusSlice{
			Label: string(status),
			Value: int(math.Round(percent)),
			Tone:  statusTone(status),
		})
	}

	return slices, nil
}

// SourceBreakdown sums donation amounts per source over the entire
// collection, blank sources grouped under Unknown, ordered by first
// occurrence in the newest-first collection.
func (s *Service) SourceBreakdown(ctx context.Context) ([]SourceRow, error) {
	rows, err := s.repo.SourceTotals(ctx)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]float64, len(rows))
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		source := donationsdomain.NormalizeSource(row.Source)
		if _, seen := merged[source]; !seen {
			order = append(order, source)
		}
		merged[source] += row.Total
	}

	result := make([]SourceRow, 0, len(order))
	for _, source := range order {
		result = append(result, SourceRow{Source: source, Total: merged[source]})
	}

	return result, nil
}

func statusTone(status donationsdomain.Status) string {
	switch status {
	case donationsdomain.StatusCompleted:
		return "green"
	case donationsdomain.StatusPending:
		return "amber"
	case donationsdomain.StatusFailed:
		return "rose"
	default:
		return "amber"
	}
}

func truncateToUTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
