package ports

import (
	"context"
	"time"

	"github.com/societyhub/society-api/internal/core/domain"
)

// Caller identifies the authenticated actor behind a request.
type Caller struct {
	ID    string
	Email string
	Role  string
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == domain.RoleAdmin
}

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber int64
	Address     string
	Password    string
}

// UpdateProfileInput carries the optional fields a member may change.
type UpdateProfileInput struct {
	Address     *string
	PhoneNumber *int64
	Password    *string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User  *domain.User
	Token string
}

// UserService defines account use cases.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetProfile(ctx context.Context, caller Caller, id string) (*domain.User, error)
	ListUsers(ctx context.Context, roles []string) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, email string, in UpdateProfileInput) (*domain.User, error)
	UpdateUserRole(ctx context.Context, caller Caller, email, role string) (*domain.User, error)
}
