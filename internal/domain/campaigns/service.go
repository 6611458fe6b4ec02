package campaigns

import (
	"context"
	"regexp"
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

// ListPublic returns active campaigns for the public site.
func (s *Service) ListPublic(ctx context.Context) ([]Campaign, error) {
	items, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Campaign{}
	}
	return items, nil
}

// ListAll returns every campaign, active or not, for the admin dashboard.
func (s *Service) ListAll(ctx context.Context) ([]Campaign, error) {
	items, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Campaign{}
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Campaign, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Campaign, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	slug := slugify(input.Slug)
	if slug == "" {
		slug = slugify(title)
	}

	taken, err := s.repo.CountBySlug(ctx, slug, "")
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, ErrSlugTaken
	}

	campaign := Campaign{
		ID:          uuid.NewString(),
		Title:       title,
		Slug:        slug,
		Summary:     strings.TrimSpace(input.Summary),
		Description: input.Description,
		Goal:        input.Goal,
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Category:    strings.TrimSpace(input.Category),
		Active:      input.Active,
	}

	if err := s.repo.Create(ctx, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Update rewrites a campaign. A non-blank slug in the input replaces the
// stored one after the same uniqueness check as Create, ignoring the
// campaign's own row; a blank slug leaves the stored slug alone.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*Campaign, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	campaign, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if slug := slugify(input.Slug); slug != "" {
		taken, err := s.repo.CountBySlug(ctx, slug, campaign.ID)
		if err != nil {
			return nil, err
		}
		if taken > 0 {
			return nil, ErrSlugTaken
		}
		campaign.Slug = slug
	}

	campaign.Title = title
	campaign.Summary = strings.TrimSpace(input.Summary)
	campaign.Description = input.Description
	campaign.Goal = input.Goal
	campaign.ImageURL = strings.TrimSpace(input.ImageURL)
	campaign.Category = strings.TrimSpace(input.Category)
	campaign.Active = input.Active
	campaign.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCampaignNotFound
	}
	return nil
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = slugPattern.ReplaceAllString(value, "-")
	return strings.Trim(value, "-")
}
