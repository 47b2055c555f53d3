package ports

import (
	"context"

	"github.com/societyhub/society-api/internal/core/domain"
)

// CreateComplaintInput carries the data a resident submits.
type CreateComplaintInput struct {
	Title       string
	Description string
	Category    string
}

// ComplaintService defines complaint use cases. Visibility and permission
// rules are derived from the caller's role.
type ComplaintService interface {
	Create(ctx context.Context, caller Caller, in CreateComplaintInput) (*domain.Complaint, error)
	List(ctx context.Context, caller Caller, status string) ([]*domain.Complaint, error)
	Get(ctx context.Context, caller Caller, id string) (*domain.Complaint, error)
	Assign(ctx context.Context, caller Caller, id, workerEmail string) (*domain.Complaint, error)
	UpdateStatus(ctx context.Context, caller Caller, id string, status domain.ComplaintStatus) (*domain.Complaint, error)
	Delete(ctx context.Context, caller Caller, id string) error
}
