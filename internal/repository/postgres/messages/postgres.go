package messages

import (
	"context"

	messagesdomain "donation-hub-go/internal/domain/messages"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, message *messagesdomain.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *PostgresRepository) List(ctx context.Context) ([]messagesdomain.Message, error) {
	var items []messagesdomain.Message
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&messagesdomain.Message{}).
		Where("id = ?", id).
		Update("read", true)
	return result.RowsAffected > 0, result.Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&messagesdomain.Message{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
