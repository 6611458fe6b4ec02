package analytics

import (
	"context"
	"time"
)

// Repository answers aggregate queries over the donation collection.
//
// Summary and DailyTotals receive the caller's exact instants: inclusion is
// instant-level against the untruncated bounds, day-bucketing happens after.
// StatusCounts and SourceTotals are unscoped by date and group the raw
// stored values; the service applies the status/source defaulting.
type Repository interface {
	Summary(ctx context.Context, from, to time.Time) (SummaryResult, error)
	DailyTotals(ctx context.Context, from, to time.Time) ([]DailyRow, error)
	StatusCounts(ctx context.Context) ([]StatusCount, error)
	SourceTotals(ctx context.Context) ([]SourceRow, error)
}
