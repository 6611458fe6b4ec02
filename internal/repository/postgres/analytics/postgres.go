package analytics

import (
	"context"
	"time"

	analyticsdomain "donation-hub-go/internal/domain/analytics"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Summary(ctx context.Context, from, to time.Time) (analyticsdomain.SummaryResult, error) {
	query := "SELECT COALESCE(SUM(d.amount), 0) AS total_amount, COUNT(*) AS total_count " +
		"FROM donations d WHERE d.created_at >= ? AND d.created_at <= ?"

	var row struct {
		TotalAmount float64 `gorm:"column:total_amount"`
		TotalCount  int64   `gorm:"column:total_count"`
	}

	if err := r.db.WithContext(ctx).Raw(query, from, to).Scan(&row).Error; err != nil {
		return analyticsdomain.SummaryResult{}, err
	}

	return analyticsdomain.SummaryResult{TotalAmount: row.TotalAmount, TotalCount: row.TotalCount}, nil
}

// DailyTotals buckets by UTC calendar day after the instant-level range
// filter, matching the service's zero-fill contract.
func (r *PostgresRepository) DailyTotals(ctx context.Context, from, to time.Time) ([]analyticsdomain.DailyRow, error) {
	query := "SELECT to_char(date_trunc('day', d.created_at AT TIME ZONE 'UTC'), 'YYYY-MM-DD') AS date, " +
		"COALESCE(SUM(d.amount), 0) AS total " +
		"FROM donations d WHERE d.created_at >= ? AND d.created_at <= ? " +
		"GROUP BY 1 ORDER BY 1"

	var rows []analyticsdomain.DailyRow
	if err := r.db.WithContext(ctx).Raw(query, from, to).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// StatusCounts groups the raw stored status values over the whole
// collection. Groups are ordered by their most recent donation, which is
// the order of first occurrence when scanning the newest-first collection.
func (r *PostgresRepository) StatusCounts(ctx context.Context) ([]analyticsdomain.StatusCount, error) {
	query := "SELECT d.status AS status, COUNT(*) AS count " +
		"FROM donations d GROUP BY d.status ORDER BY MAX(d.created_at) DESC"

	var rows []analyticsdomain.StatusCount
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *PostgresRepository) SourceTotals(ctx context.Context) ([]analyticsdomain.SourceRow, error) {
	query := "SELECT d.source AS source, COALESCE(SUM(d.amount), 0) AS total " +
		"FROM donations d GROUP BY d.source ORDER BY MAX(d.created_at) DESC"

	var rows []analyticsdomain.SourceRow
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
