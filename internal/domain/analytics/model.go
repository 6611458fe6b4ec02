package analytics

// SummaryResult is the windowed donation total.
type SummaryResult struct {
	TotalAmount float64
	TotalCount  int64
}

// DailyRow is a sparse per-day sum as returned by the repository: one row
// per UTC calendar day that actually has donations, ascending.
type DailyRow struct {
	Date  string  `gorm:"column:date"`
	Total float64 `gorm:"column:total"`
}

// DailyPoint is one entry of the gap-free daily series.
type DailyPoint struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// Overview is the analytics dashboard payload.
//
// TotalAmount and TotalCount are summarized over [start, now] with an
// absent start meaning "unbounded past". The Daily series covers the
// requested window only; an absent start defaults to the start of the
// current UTC day and an absent end to "now", so an unparameterized call
// yields the all-time totals plus a single-day series for today including
// donations made earlier in the day. PeriodAmount is the sum of the Daily
// buckets.
type Overview struct {
	TotalAmount  float64      `json:"totalAmount"`
	TotalCount   int64        `json:"totalCount"`
	PeriodAmount float64      `json:"periodAmount"`
	Daily        []DailyPoint `json:"daily"`
}

// StatusCount is a raw per-status group over the whole collection, ordered
// by each group's most recent donation (first occurrence when scanning the
// newest-first collection).
type StatusCount struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

// StatusSlice is one segment of the status breakdown. Value is the group's
// share of the total count as an independently rounded percentage; the
// slices' values may not sum to exactly 100.
type StatusSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Tone  string `json:"tone"`
}

// SourceRow is a per-source amount total over the whole collection.
type SourceRow struct {
	Source string  `gorm:"column:source" json:"source"`
	Total  float64 `gorm:"column:total" json:"total"`
}
