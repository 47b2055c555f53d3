package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/societyhub/society-api/internal/core/domain"
	"github.com/societyhub/society-api/internal/core/ports"
	"github.com/societyhub/society-api/internal/pkg/metrics"
)

const referencePrefix = "CMP-"

// ComplaintService implements complaint submission and handling.
type ComplaintService struct {
	repo   ports.ComplaintRepository
	users  ports.UserRepository
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewComplaintService(repo ports.ComplaintRepository, users ports.UserRepository, audit ports.AuditSink, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{repo: repo, users: users, audit: audit, logger: logger}
}

// Create raises a new complaint on behalf of caller. Workers cannot raise complaints.
func (s *ComplaintService) Create(ctx context.Context, caller ports.Caller, in ports.CreateComplaintInput) (*domain.Complaint, error) {
	if caller.Role == domain.RoleWorker {
		return nil, domain.ErrForbidden
	}

	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description required", domain.ErrValidation)
	}

	category := strings.ToLower(strings.TrimSpace(in.Category))
	if category == "" {
		category = "other"
	}
	if !slices.Contains(domain.ComplaintCategories, category) {
		return nil, fmt.Errorf("%w: category must be one of: %s", domain.ErrValidation, strings.Join(domain.ComplaintCategories, ", "))
	}

	now := time.Now().UTC()
	complaint, err := s.repo.Create(ctx, &domain.Complaint{
		Reference:   referencePrefix + ulid.Make().String(),
		Title:       title,
		Description: description,
		Category:    category,
		Status:      domain.ComplaintPending,
		RaisedBy:    caller.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create complaint")
		return nil, fmt.Errorf("create complaint: %w", err)
	}

	metrics.ComplaintsCreatedTotal.WithLabelValues(category).Inc()
	s.record(complaint.Reference, domain.AuditComplaintCreated, caller.Email, nil)
	s.logger.Info().Str("reference", complaint.Reference).Str("raised_by", caller.Email).Msg("complaint created")

	return complaint, nil
}

// List returns the complaints visible to caller: residents see their own,
// workers see those assigned to them, administrators see all.
func (s *ComplaintService) List(ctx context.Context, caller ports.Caller, status string) ([]*domain.Complaint, error) {
	filter := ports.ComplaintFilter{Status: strings.TrimSpace(status)}
	switch caller.Role {
	case domain.RoleAdmin:
	case domain.RoleWorker:
		filter.AssignedTo = caller.Email
	default:
		filter.RaisedBy = caller.Email
	}

	complaints, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return complaints, nil
}

func (s *ComplaintService) Get(ctx context.Context, caller ports.Caller, id string) (*domain.Complaint, error) {
	complaint, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canView(caller, complaint) {
		return nil, domain.ErrForbidden
	}
	return complaint, nil
}

// Assign hands a complaint to a worker. Administrators only.
func (s *ComplaintService) Assign(ctx context.Context, caller ports.Caller, id, workerEmail string) (*domain.Complaint, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	workerEmail = domain.NormalizeEmail(workerEmail)
	if workerEmail == "" {
		return nil, fmt.Errorf("%w: worker email required", domain.ErrValidation)
	}
	worker, err := s.users.FindByEmail(ctx, workerEmail)
	if err != nil {
		return nil, err
	}
	if worker.Role != domain.RoleWorker {
		return nil, fmt.Errorf("%w: %s is not a worker", domain.ErrValidation, workerEmail)
	}

	complaint, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !complaint.Status.CanTransitionTo(domain.ComplaintAssigned) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, complaint.Status, domain.ComplaintAssigned)
	}

	updated, err := s.repo.SetStatus(ctx, id, complaint.Status, domain.ComplaintAssigned, workerEmail)
	if err != nil {
		return nil, err
	}

	metrics.ComplaintTransitionsTotal.WithLabelValues(string(domain.ComplaintAssigned)).Inc()
	s.record(updated.Reference, domain.AuditComplaintAssigned, caller.Email, map[string]string{"assigned_to": workerEmail})
	return updated, nil
}

// UpdateStatus moves a complaint through its lifecycle. The assigned worker
// and administrators may do so; assignment itself goes through Assign.
func (s *ComplaintService) UpdateStatus(ctx context.Context, caller ports.Caller, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	if status == domain.ComplaintAssigned {
		return nil, fmt.Errorf("%w: use assign to assign a complaint", domain.ErrValidation)
	}

	complaint, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch caller.Role {
	case domain.RoleAdmin:
	case domain.RoleWorker:
		if complaint.AssignedTo != caller.Email {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}

	if !complaint.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, complaint.Status, status)
	}

	updated, err := s.repo.SetStatus(ctx, id, complaint.Status, status, "")
	if err != nil {
		return nil, err
	}

	metrics.ComplaintTransitionsTotal.WithLabelValues(string(status)).Inc()
	s.record(updated.Reference, domain.AuditComplaintStatus, caller.Email, map[string]string{
		"from": string(complaint.Status),
		"to":   string(status),
	})
	return updated, nil
}

// Delete removes a complaint. Owners may withdraw a complaint while it is
// still pending; administrators may delete any complaint.
func (s *ComplaintService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	complaint, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if caller.IsAdmin() {
		return s.repo.Delete(ctx, id, "")
	}
	if complaint.RaisedBy != caller.Email || complaint.Status != domain.ComplaintPending {
		return domain.ErrForbidden
	}

	// The complaint may have been assigned since it was read.
	err = s.repo.Delete(ctx, id, domain.ComplaintPending)
	if errors.Is(err, domain.ErrInvalidTransition) {
		return domain.ErrForbidden
	}
	return err
}

func (s *ComplaintService) record(reference, action, actor string, details map[string]string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEvent{
		Subject:    reference,
		Action:     action,
		Actor:      actor,
		Details:    details,
		OccurredAt: time.Now().UTC(),
	})
}

func canView(caller ports.Caller, c *domain.Complaint) bool {
	return caller.IsAdmin() || c.RaisedBy == caller.Email || (c.AssignedTo != "" && c.AssignedTo == caller.Email)
}
