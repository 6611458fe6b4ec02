package stories

import (
	"context"
	"errors"

	storiesdomain "donation-hub-go/internal/domain/stories"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]storiesdomain.Story, error) {
	var items []storiesdomain.Story
	if err := r.db.WithContext(ctx).
		Order("published_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*storiesdomain.Story, error) {
	var story storiesdomain.Story
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&story).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storiesdomain.ErrStoryNotFound
		}
		return nil, err
	}
	return &story, nil
}

func (r *PostgresRepository) Create(ctx context.Context, story *storiesdomain.Story) error {
	return r.db.WithContext(ctx).Create(story).Error
}

func (r *PostgresRepository) Update(ctx context.Context, story *storiesdomain.Story) error {
	return r.db.WithContext(ctx).
		Model(&storiesdomain.Story{}).
		Where("id = ?", story.ID).
		Updates(map[string]interface{}{
			"title":        story.Title,
			"excerpt":      story.Excerpt,
			"body":         story.Body,
			"image_url":    story.ImageURL,
			"published_at": story.PublishedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&storiesdomain.Story{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
