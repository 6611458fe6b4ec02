package donations

import (
	"context"

	donationsdomain "donation-hub-go/internal/domain/donations"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, donation *donationsdomain.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *PostgresRepository) List(ctx context.Context, filter donationsdomain.ListFilter) ([]donationsdomain.Donation, int64, error) {
	query := r.db.WithContext(ctx).Model(&donationsdomain.Donation{})

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at desc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []donationsdomain.Donation
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]donationsdomain.Donation, error) {
	var items []donationsdomain.Donation
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
