package ports

import (
	"context"

	"github.com/societyhub/society-api/internal/core/domain"
)

// RoleRepository defines persistence operations for role records.
type RoleRepository interface {
	FindBySlug(ctx context.Context, slug string) (*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	// Upsert inserts the role when its slug is unknown and leaves it alone otherwise.
	Upsert(ctx context.Context, role *domain.Role) error
}
