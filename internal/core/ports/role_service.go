package ports

import (
	"context"

	"github.com/societyhub/society-api/internal/core/domain"
)

// RoleService defines role catalogue use cases.
type RoleService interface {
	List(ctx context.Context) ([]*domain.Role, error)
	Create(ctx context.Context, name string) (*domain.Role, error)
}
