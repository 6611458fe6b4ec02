package content

import "context"

type Repository interface {
	Get(ctx context.Context, key string) (*Section, error)
	Upsert(ctx context.Context, section *Section) error
}
