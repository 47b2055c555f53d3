package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/societyhub/society-api/internal/core/domain"
	"github.com/societyhub/society-api/internal/core/ports"
)

const (
	defaultAnnouncementLimit = 20
	maxAnnouncementLimit     = 100
)

// AnnouncementService publishes notices to society members.
type AnnouncementService struct {
	repo   ports.AnnouncementRepository
	logger zerolog.Logger
}

func NewAnnouncementService(repo ports.AnnouncementRepository, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, logger: logger}
}

func (s *AnnouncementService) Create(ctx context.Context, caller ports.Caller, title, body string) (*domain.Announcement, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, fmt.Errorf("%w: title and body required", domain.ErrValidation)
	}

	a, err := s.repo.Create(ctx, &domain.Announcement{
		Title:     title,
		Body:      body,
		Author:    caller.Email,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	s.logger.Info().Str("id", a.ID).Str("author", caller.Email).Msg("announcement published")
	return a, nil
}

// List returns the newest announcements first. limit is clamped to
// [1, maxAnnouncementLimit]; zero selects the default page size.
func (s *AnnouncementService) List(ctx context.Context, limit int64) ([]*domain.Announcement, error) {
	switch {
	case limit <= 0:
		limit = defaultAnnouncementLimit
	case limit > maxAnnouncementLimit:
		limit = maxAnnouncementLimit
	}

	items, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return items, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
