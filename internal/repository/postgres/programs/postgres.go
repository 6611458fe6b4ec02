package programs

import (
	"context"
	"errors"

	programsdomain "donation-hub-go/internal/domain/programs"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]programsdomain.Program, error) {
	var items []programsdomain.Program
	if err := r.db.WithContext(ctx).
		Order("sort_order asc, created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*programsdomain.Program, error) {
	var program programsdomain.Program
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, programsdomain.ErrProgramNotFound
		}
		return nil, err
	}
	return &program, nil
}

func (r *PostgresRepository) Create(ctx context.Context, program *programsdomain.Program) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *PostgresRepository) Update(ctx context.Context, program *programsdomain.Program) error {
	return r.db.WithContext(ctx).
		Model(&programsdomain.Program{}).
		Where("id = ?", program.ID).
		Updates(map[string]interface{}{
			"title":       program.Title,
			"summary":     program.Summary,
			"description": program.Description,
			"image_url":   program.ImageURL,
			"sort_order":  program.SortOrder,
			"updated_at":  program.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&programsdomain.Program{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
