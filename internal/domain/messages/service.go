package messages

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Submit stores a contact-form message. Unlike donations, a malformed
// submission is rejected: the inbox is useless without a sender and a body.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*Message, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	body := strings.TrimSpace(input.Body)
	if name == "" || email == "" || body == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidMessage
	}

	message := Message{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Subject:   strings.TrimSpace(input.Subject),
		Body:      body,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// List returns the inbox newest first.
func (s *Service) List(ctx context.Context) ([]Message, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Message{}
	}
	return items, nil
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	updated, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if !updated {
		return ErrMessageNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMessageNotFound
	}
	return nil
}
