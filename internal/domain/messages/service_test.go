package messages

import (
	"context"
	"errors"
	"testing"
)

type fakeMessageRepo struct {
	items []Message
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *Message) error {
	f.items = append([]Message{*message}, f.items...)
	return nil
}

func (f *fakeMessageRepo) List(ctx context.Context) ([]Message, error) {
	return f.items, nil
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMessageRepo) Delete(ctx context.Context, id string) (bool, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestSubmitStoresTrimmedMessage(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := NewService(repo)

	message, err := svc.Submit(context.Background(), SubmitInput{
		Name:  "  Sam  ",
		Email: "sam@example.org",
		Body:  "How do I volunteer?",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if message.Name != "Sam" || message.Read {
		t.Fatalf("unexpected message: %+v", message)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected stored message, got %d", len(repo.items))
	}
}

func TestSubmitRejectsIncompleteInput(t *testing.T) {
	svc := NewService(&fakeMessageRepo{})

	cases := []SubmitInput{
		{Email: "a@b.c", Body: "hi"},
		{Name: "Sam", Body: "hi"},
		{Name: "Sam", Email: "a@b.c"},
		{Name: "Sam", Email: "not-an-email", Body: "hi"},
	}
	for i, input := range cases {
		if _, err := svc.Submit(context.Background(), input); !errors.Is(err, ErrInvalidMessage) {
			t.Fatalf("case %d: expected ErrInvalidMessage, got %v", i, err)
		}
	}
}

func TestMarkReadMissingMessage(t *testing.T) {
	svc := NewService(&fakeMessageRepo{})

	if err := svc.MarkRead(context.Background(), "missing"); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}
