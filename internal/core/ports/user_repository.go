package ports

import (
	"context"

	"github.com/societyhub/society-api/internal/core/domain"
)

// ProfileUpdate carries the optional fields of a profile change. Nil fields
// are left untouched in storage.
type ProfileUpdate struct {
	Address      *string
	PhoneNumber  *int64
	PasswordHash *string
}

// UserRepository defines persistence operations for society members.
type UserRepository interface {
	// Create inserts a user and returns domain.ErrUserExists when the email
	// unique index rejects the write.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns the user with RoleInfo resolved from the roles collection.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns users whose role is one of roles (all users when empty),
	// each with RoleInfo resolved.
	List(ctx context.Context, roles []string) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (*domain.User, error)
	UpdateRole(ctx context.Context, email, role string) (*domain.User, error)
}
