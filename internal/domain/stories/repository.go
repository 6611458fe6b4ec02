package stories

import "context"

type Repository interface {
	List(ctx context.Context) ([]Story, error)
	GetByID(ctx context.Context, id string) (*Story, error)
	Create(ctx context.Context, story *Story) error
	Update(ctx context.Context, story *Story) error
	Delete(ctx context.Context, id string) (bool, error)
}
