package content

import (
	"context"
	"errors"
	"time"

	contentdomain "donation-hub-go/internal/domain/content"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, key string) (*contentdomain.Section, error) {
	var section contentdomain.Section
	if err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contentdomain.ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, section *contentdomain.Section) error {
	section.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(section).Error
}
