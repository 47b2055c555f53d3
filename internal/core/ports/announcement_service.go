package ports

import (
	"context"

	"github.com/societyhub/society-api/internal/core/domain"
)

// AnnouncementService defines announcement use cases.
type AnnouncementService interface {
	Create(ctx context.Context, caller Caller, title, body string) (*domain.Announcement, error)
	List(ctx context.Context, limit int64) ([]*domain.Announcement, error)
	Delete(ctx context.Context, caller Caller, id string) error
}
