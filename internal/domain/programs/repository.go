package programs

import "context"

type Repository interface {
	List(ctx context.Context) ([]Program, error)
	GetByID(ctx context.Context, id string) (*Program, error)
	Create(ctx context.Context, program *Program) error
	Update(ctx context.Context, program *Program) error
	Delete(ctx context.Context, id string) (bool, error)
}
