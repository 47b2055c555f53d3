package ports

import (
	"context"

	"github.com/societyhub/society-api/internal/core/domain"
)

// AnnouncementRepository defines persistence operations for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	// List returns the most recent announcements first, at most limit items.
	List(ctx context.Context, limit int64) ([]*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}
