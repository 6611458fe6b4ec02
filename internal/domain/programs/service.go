package programs

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns programs in display order.
func (s *Service) List(ctx context.Context) ([]Program, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Program{}
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, input UpsertInput) (*Program, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	program := Program{
		ID:          uuid.NewString(),
		Title:       title,
		Summary:     strings.TrimSpace(input.Summary),
		Description: input.Description,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		SortOrder:   input.SortOrder,
	}

	if err := s.repo.Create(ctx, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

func (s *Service) Update(ctx context.Context, id string, input UpsertInput) (*Program, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	program, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	program.Title = title
	program.Summary = strings.TrimSpace(input.Summary)
	program.Description = input.Description
	program.ImageURL = strings.TrimSpace(input.ImageURL)
	program.SortOrder = input.SortOrder
	program.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProgramNotFound
	}
	return nil
}
