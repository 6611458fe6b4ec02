package analytics

import (
	"context"
	"sort"
	"testing"
	"time"

	donationsdomain "donation-hub-go/internal/domain/donations"
)

// fakeAnalyticsRepo aggregates over an in-memory donation list held newest
// first, mirroring what the postgres repository computes in SQL.
type fakeAnalyticsRepo struct {
	donations []donationsdomain.Donation
}

func (f *fakeAnalyticsRepo) Summary(ctx context.Context, from, to time.Time) (SummaryResult, error) {
	var result SummaryResult
	for _, d := range f.donations {
		if inRange(d.CreatedAt, from, to) {
			result.TotalAmount += d.Amount
			result.TotalCount++
		}
	}
	return result, nil
}

func (f *fakeAnalyticsRepo) DailyTotals(ctx context.Context, from, to time.Time) ([]DailyRow, error) {
	totals := make(map[string]float64)
	for _, d := range f.donations {
		if inRange(d.CreatedAt, from, to) {
			totals[d.CreatedAt.UTC().Format("2006-01-02")] += d.Amount
		}
	}
	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	rows := make([]DailyRow, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, DailyRow{Date: key, Total: totals[key]})
	}
	return rows, nil
}

func (f *fakeAnalyticsRepo) StatusCounts(ctx context.Context) ([]StatusCount, error) {
	counts := make(map[string]int64)
	var order []string
	for _, d := range f.donations {
		if _, seen := counts[d.Status]; !seen {
			order = append(order, d.Status)
		}
		counts[d.Status]++
	}
	rows := make([]StatusCount, 0, len(order))
	for _, status := range order {
		rows = append(rows, StatusCount{Status: status, Count: counts[status]})
	}
	return rows, nil
}

func (f *fakeAnalyticsRepo) SourceTotals(ctx context.Context) ([]SourceRow, error) {
	totals := make(map[string]float64)
	var order []string
	for _, d := range f.donations {
		if _, seen := totals[d.Source]; !seen {
			order = append(order, d.Source)
		}
		totals[d.Source] += d.Amount
	}
	rows := make([]SourceRow, 0, len(order))
	for _, source := range order {
		rows = append(rows, SourceRow{Source: source, Total: totals[source]})
	}
	return rows, nil
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func donationAt(amount float64, createdAt string) donationsdomain.Donation {
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		panic(err)
	}
	return donationsdomain.Donation{Amount: amount, Status: "Completed", CreatedAt: ts}
}

func datePtr(t time.Time) *time.Time { return &t }

func TestOverviewDailySeriesWorkedExample(t *testing.T) {
	repo := &fakeAnalyticsRepo{donations: []donationsdomain.Donation{
		donationAt(50, "2024-01-03T00:00:00Z"),
		donationAt(100, "2024-01-01T00:00:00Z"),
	}}
	svc := NewService(repo)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	result, err := svc.Overview(context.Background(), datePtr(start), datePtr(end))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []DailyPoint{
		{Date: "2024-01-01", Total: 100},
		{Date: "2024-01-02", Total: 0},
		{Date: "2024-01-03", Total: 50},
	}
	if len(result.Daily) != len(want) {
		t.Fatalf("expected %d points, got %d: %+v", len(want), len(result.Daily), result.Daily)
	}
	for i, point := range want {
		if result.Daily[i] != point {
			t.Fatalf("point %d: expected %+v, got %+v", i, point, result.Daily[i])
		}
	}
	if result.PeriodAmount != 150 {
		t.Fatalf("expected period amount 150, got %v", result.PeriodAmount)
	}
}

func TestOverviewDailySeriesIsContiguous(t *testing.T) {
	repo := &fakeAnalyticsRepo{donations: []donationsdomain.Donation{
		donationAt(10, "2024-03-05T09:30:00Z"),
		donationAt(20, "2024-02-20T18:00:00Z"),
	}}
	svc := NewService(repo)

	start := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)

	result, err := svc.Overview(context.Background(), datePtr(start), datePtr(end))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Feb 15 through Mar 10 inclusive (2024 is a leap year).
	if len(result.Daily) != 25 {
		t.Fatalf("expected 25 points, got %d", len(result.Daily))
	}

	previous, _ := time.Parse("2006-01-02", result.Daily[0].Date)
	for _, point := range result.Daily[1:] {
		day, err := time.Parse("2006-01-02", point.Date)
		if err != nil {
			t.Fatalf("bad date key %q: %v", point.Date, err)
		}
		if !day.Equal(previous.AddDate(0, 0, 1)) {
			t.Fatalf("series not contiguous at %s (previous %s)", point.Date, previous.Format("2006-01-02"))
		}
		previous = day
	}
}

func TestOverviewEmptyCollection(t *testing.T) {
	svc := NewService(&fakeAnalyticsRepo{})

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	result, err := svc.Overview(context.Background(), datePtr(start), datePtr(end))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.TotalAmount != 0 || result.TotalCount != 0 {
		t.Fatalf("expected zero summary, got %+v", result)
	}
	if result.PeriodAmount != 0 {
		t.Fatalf("expected zero period amount, got %v", result.PeriodAmount)
	}
	for _, point := range result.Daily {
		if point.Total != 0 {
			t.Fatalf("expected zero-filled series, got %+v", result.Daily)
		}
	}
}

func TestOverviewInvertedRangeYieldsEmptySeries(t *testing.T) {
	repo := &fakeAnalyticsRepo{donations: []donationsdomain.Donation{
		donationAt(100, "2024-01-01T00:00:00Z"),
	}}
	svc := NewService(repo)

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	result, err := svc.Overview(context.Background(), datePtr(start), datePtr(end))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Daily) != 0 {
		t.Fatalf("expected empty series for inverted range, got %+v", result.Daily)
	}
}

func TestOverviewDefaultsToAllTimeSummaryAndSingleDay(t *testing.T) {
	repo := &fakeAnalyticsRepo{donations: []donationsdomain.Donation{
		donationAt(25, "2026-02-01T10:00:00Z"),
		donationAt(5, "2026-02-01T00:00:00Z"),
		donationAt(75, "2020-06-15T00:00:00Z"),
	}}
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	}

	result, err := svc.Overview(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.TotalAmount != 105 || result.TotalCount != 3 {
		t.Fatalf("expected all-time summary {105 3}, got {%v %d}", result.TotalAmount, result.TotalCount)
	}
	if len(result.Daily) != 1 || result.Daily[0].Date != "2026-02-01" {
		t.Fatalf("expected single-day series for today, got %+v", result.Daily)
	}
	// Everything from midnight UTC up to now lands in today's bucket.
	if result.Daily[0].Total != 30 || result.PeriodAmount != 30 {
		t.Fatalf("expected today's bucket 30, got %+v", result)
	}
}

func TestStatusBreakdownPercentagesAndTones(t *testing.T) {
	repo := &fakeAnalyticsRepo{donations: []donationsdomain.Donation{
		{Amount: 10, Status: "Completed", CreatedAt: time.Now()},
		{Amount: 10, Status: "Completed", CreatedAt: time.Now()},
		{Amount: 10, Status: "Pending", CreatedAt: time.Now()},
		{Amount: 10, Status: "Failed", CreatedAt: time.Now()},
		{Amount: 10, Status: "Refunded", CreatedAt: time.Now()},
		{Amount: 10, Status: "", CreatedAt: time.Now()},
		{Amount: 10, Status: "Chargeback", CreatedAt: time.Now()},
	}}
	svc := NewService(repo)

	slices, err := svc.StatusBreakdown(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tones := map[string]string{}
	sum := 0
	for _, slice := range slices {
		if slice.Value < 0 || slice.Value > 100 {
			t.Fatalf("percentage out of range: %+v", slice)
		}
		sum += slice.Value
		tones[slice.Label] = slice.Tone
	}

	// Each group rounds independently: the sum may drift, but only within
	// half a point per group.
	if sum < 100-len(slices) || sum > 100+len(slices) {
		t.Fatalf("percentage sum drifted too far: %d from %+v", sum, slices)
	}

	if tones["Completed"] != "green" || tones["Pending"] != "amber" || tones["Failed"] != "rose" {
		t.Fatalf("unexpected tones: %+v", tones)
	}
	if tone, ok := tones["Other"]; !ok || tone != "amber" {
		t.Fatalf("expected unrecognized statuses collapsed to Other with amber tone, got %+v", slices)
	}
	if _, leaked := tones["Refunded"]; leaked {
		t.Fatalf("raw status leaked through normalization: %+v", slices)
	}

	// Blank status counts as Completed: 3 of 7 donations.
	for _, slice := range slices {
		if slice.Label == "Completed" && slice.Value != 43 {
			t.Fatalf("expected Completed at 43%%, got %d", slice.Value)
		}
	}
}

func TestStatusBreakdownEmptyCollection(t *testing.T) {
	svc := NewService(&fakeAnalyticsRepo{})

	slices, err := svc.StatusBreakdown(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(slices) != 0 {
		t.Fatalf("expected empty breakdown, got %+v", slices)
	}
}

func TestSourceBreakdownTotalsMatchCollection(t *testing.T) {
	donationsList := []donationsdomain.Donation{
		{Amount: 120.50, Source: "Website", CreatedAt: time.Now()},
		{Amount: 30.25, Source: "", CreatedAt: time.Now()},
		{Amount: 49.25, Source: "Event", CreatedAt: time.Now()},
		{Amount: 10, Source: "Website", CreatedAt: time.Now()},
	}
	svc := NewService(&fakeAnalyticsRepo{donations: donationsList})

	rows, err := svc.SourceBreakdown(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var collectionSum, breakdownSum float64
	for _, d := range donationsList {
		collectionSum += d.Amount
	}
	for _, row := range rows {
		breakdownSum += row.Total
	}
	if diff := breakdownSum - collectionSum; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("breakdown sum %v != collection sum %v", breakdownSum, collectionSum)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 groups, got %+v", rows)
	}
	if rows[0].Source != "Website" || rows[1].Source != "Unknown" || rows[2].Source != "Event" {
		t.Fatalf("expected first-occurrence order with Unknown for blank source, got %+v", rows)
	}
	if rows[0].Total != 130.50 {
		t.Fatalf("expected Website total 130.50, got %v", rows[0].Total)
	}
}
