package stories

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

// List returns stories newest published first.
func (s *Service) List(ctx context.Context) ([]Story, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Story{}
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Story, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input UpsertInput) (*Story, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	publishedAt := s.now().UTC()
	if input.PublishedAt != nil {
		publishedAt = input.PublishedAt.UTC()
	}

	story := Story{
		ID:          uuid.NewString(),
		Title:       title,
		Excerpt:     strings.TrimSpace(input.Excerpt),
		Body:        input.Body,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		PublishedAt: publishedAt,
	}

	if err := s.repo.Create(ctx, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

func (s *Service) Update(ctx context.Context, id string, input UpsertInput) (*Story, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	story, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	story.Title = title
	story.Excerpt = strings.TrimSpace(input.Excerpt)
	story.Body = input.Body
	story.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.PublishedAt != nil {
		story.PublishedAt = input.PublishedAt.UTC()
	}

	if err := s.repo.Update(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStoryNotFound
	}
	return nil
}
