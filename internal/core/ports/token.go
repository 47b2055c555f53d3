package ports

import (
	"context"
	"time"

	"github.com/societyhub/society-api/internal/core/domain"
)

// Claims is the identity carried by a session token. Role is the role held
// when the token was issued and does not grant anything by itself.
type Claims struct {
	UserID    string
	Email     string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
	Parse(token string) (*Claims, error)
}

// TokenDenylist tracks revoked tokens until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// RoleResolver returns the role currently stored for a user. It reports
// domain.ErrInvalidToken when the user no longer exists.
type RoleResolver interface {
	CurrentRole(ctx context.Context, userID string) (string, error)
}
