package content

import (
	"context"
	"regexp"
	"strings"

	"gorm.io/datatypes"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

func (s *Service) Get(ctx context.Context, key string) (*Section, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if !keyPattern.MatchString(key) {
		return nil, ErrSectionNotFound
	}
	return s.repo.Get(ctx, key)
}

func (s *Service) Put(ctx context.Context, key string, value datatypes.JSON) (*Section, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if !keyPattern.MatchString(key) {
		return nil, ErrInvalidKey
	}

	section := Section{Key: key, Value: value}
	if err := s.repo.Upsert(ctx, &section); err != nil {
		return nil, err
	}
	return &section, nil
}
