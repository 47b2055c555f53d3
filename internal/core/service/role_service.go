package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/societyhub/society-api/internal/core/domain"
	"github.com/societyhub/society-api/internal/core/ports"
)

// RoleService manages the catalogue of roles users can be assigned.
type RoleService struct {
	repo   ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(repo ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, logger: logger}
}

func (s *RoleService) List(ctx context.Context) ([]*domain.Role, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// Create adds a role whose slug is derived from name.
func (s *RoleService) Create(ctx context.Context, name string) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	roleSlug := slug.Make(name)
	if roleSlug == "" {
		return nil, fmt.Errorf("%w: name must contain letters or digits", domain.ErrValidation)
	}

	role, err := s.repo.Create(ctx, &domain.Role{Name: name, Slug: roleSlug})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("slug", role.Slug).Msg("role created")
	return role, nil
}

// EnsureDefaults seeds the built-in roles. Safe to call on every start-up.
func (s *RoleService) EnsureDefaults(ctx context.Context) error {
	for _, r := range domain.DefaultRoles {
		role := r
		if err := s.repo.Upsert(ctx, &role); err != nil {
			return fmt.Errorf("seed role %s: %w", role.Slug, err)
		}
	}
	return nil
}
