package ports

import (
	"context"

	"github.com/societyhub/society-api/internal/core/domain"
)

// ComplaintFilter narrows a complaint listing. Empty fields do not filter.
type ComplaintFilter struct {
	RaisedBy   string
	AssignedTo string
	Status     string
}

// ComplaintRepository defines persistence operations for complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error)
	FindByID(ctx context.Context, id string) (*domain.Complaint, error)
	List(ctx context.Context, filter ComplaintFilter) ([]*domain.Complaint, error)
	// SetStatus moves a complaint from one status to another. The write only
	// applies while the stored status still equals from; otherwise
	// domain.ErrInvalidTransition is returned. A non-empty assignee replaces
	// the assigned worker.
	SetStatus(ctx context.Context, id string, from, to domain.ComplaintStatus, assignee string) (*domain.Complaint, error)
	// Delete removes a complaint. A non-empty status makes the delete apply
	// only while the stored status still equals it; otherwise
	// domain.ErrInvalidTransition is returned.
	Delete(ctx context.Context, id string, status domain.ComplaintStatus) error
}
