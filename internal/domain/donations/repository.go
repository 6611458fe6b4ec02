package donations

import "context"

type Repository interface {
	Create(ctx context.Context, donation *Donation) error
	List(ctx context.Context, filter ListFilter) ([]Donation, int64, error)
	ListAll(ctx context.Context) ([]Donation, error)
}
