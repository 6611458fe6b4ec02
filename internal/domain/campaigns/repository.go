package campaigns

import "context"

type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]Campaign, error)
	GetByID(ctx context.Context, id string) (*Campaign, error)
	CountBySlug(ctx context.Context, slug, excludeID string) (int64, error)
	Create(ctx context.Context, campaign *Campaign) error
	Update(ctx context.Context, campaign *Campaign) error
	Delete(ctx context.Context, id string) (bool, error)
}
