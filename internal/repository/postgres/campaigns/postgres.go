package campaigns

import (
	"context"
	"errors"

	campaignsdomain "donation-hub-go/internal/domain/campaigns"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, activeOnly bool) ([]campaignsdomain.Campaign, error) {
	query := r.db.WithContext(ctx).Order("created_at desc")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var items []campaignsdomain.Campaign
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*campaignsdomain.Campaign, error) {
	var campaign campaignsdomain.Campaign
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, campaignsdomain.ErrCampaignNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *PostgresRepository) CountBySlug(ctx context.Context, slug, excludeID string) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&campaignsdomain.Campaign{}).
		Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) Create(ctx context.Context, campaign *campaignsdomain.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *PostgresRepository) Update(ctx context.Context, campaign *campaignsdomain.Campaign) error {
	return r.db.WithContext(ctx).
		Model(&campaignsdomain.Campaign{}).
		Where("id = ?", campaign.ID).
		Updates(map[string]interface{}{
			"title":       campaign.Title,
			"slug":        campaign.Slug,
			"summary":     campaign.Summary,
			"description": campaign.Description,
			"goal":        campaign.Goal,
			"image_url":   campaign.ImageURL,
			"category":    campaign.Category,
			"active":      campaign.Active,
			"updated_at":  campaign.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&campaignsdomain.Campaign{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
