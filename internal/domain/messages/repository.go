package messages

import "context"

type Repository interface {
	Create(ctx context.Context, message *Message) error
	List(ctx context.Context) ([]Message, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
