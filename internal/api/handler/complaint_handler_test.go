package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/societyhub/society-api/internal/core/domain"
	"github.com/societyhub/society-api/internal/core/ports"
)

type stubComplaintService struct {
	createFn       func(ctx context.Context, caller ports.Caller, in ports.CreateComplaintInput) (*domain.Complaint, error)
	updateStatusFn func(ctx context.Context, caller ports.Caller, id string, status domain.ComplaintStatus) (*domain.Complaint, error)
	deleteFn       func(ctx context.Context, caller ports.Caller, id string) error
}

func (s *stubComplaintService) Create(ctx context.Context, caller ports.Caller, in ports.CreateComplaintInput) (*domain.Complaint, error) {
	return s.createFn(ctx, caller, in)
}

func (s *stubComplaintService) List(context.Context, ports.Caller, string) ([]*domain.Complaint, error) {
	return nil, nil
}

func (s *stubComplaintService) Get(context.Context, ports.Caller, string) (*domain.Complaint, error) {
	return nil, domain.ErrComplaintNotFound
}

func (s *stubComplaintService) Assign(context.Context, ports.Caller, string, string) (*domain.Complaint, error) {
	return nil, nil
}

func (s *stubComplaintService) UpdateStatus(ctx context.Context, caller ports.Caller, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	return s.updateStatusFn(ctx, caller, id, status)
}

func (s *stubComplaintService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	return s.deleteFn(ctx, caller, id)
}

func TestComplaintHandler_Create(t *testing.T) {
	stub := &stubComplaintService{
		createFn: func(ctx context.Context, caller ports.Caller, in ports.CreateComplaintInput) (*domain.Complaint, error) {
			if caller.Email != "res@b.com" || in.Title != "Leak" || in.Category != "plumbing" {
				t.Fatalf("unexpected args: %+v %+v", caller, in)
			}
			return &domain.Complaint{ID: "c1", Reference: "CMP-1", Status: domain.ComplaintPending}, nil
		},
	}
	h := NewComplaintHandler(stub)
	c, rec := newContext(http.MethodPost, "/api/complaints", `{"title":"Leak","description":"Tap drips","category":"plumbing"}`)
	authenticate(c, "u1", "res@b.com", domain.RoleResident)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if resp := decode(t, rec); resp["reference"] != "CMP-1" || resp["status"] != "pending" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestComplaintHandler_Create_RequiresTitle(t *testing.T) {
	h := NewComplaintHandler(&stubComplaintService{})
	c, _ := newContext(http.MethodPost, "/api/complaints", `{"description":"Tap drips"}`)
	authenticate(c, "u1", "res@b.com", domain.RoleResident)

	if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestComplaintHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	h := NewComplaintHandler(&stubComplaintService{})
	c, _ := newContext(http.MethodPatch, "/api/complaints/c1/status", `{"status":"assigned"}`)
	c.SetParamNames("id")
	c.SetParamValues("c1")
	authenticate(c, "u2", "wrk@b.com", domain.RoleWorker)

	if err := h.UpdateStatus(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestComplaintHandler_UpdateStatus(t *testing.T) {
	stub := &stubComplaintService{
		updateStatusFn: func(ctx context.Context, caller ports.Caller, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
			if id != "c1" || status != domain.ComplaintInProgress {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return &domain.Complaint{ID: id, Status: status}, nil
		},
	}
	h := NewComplaintHandler(stub)
	c, rec := newContext(http.MethodPatch, "/api/complaints/c1/status", `{"status":"in_progress"}`)
	c.SetParamNames("id")
	c.SetParamValues("c1")
	authenticate(c, "u2", "wrk@b.com", domain.RoleWorker)

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestComplaintHandler_Delete(t *testing.T) {
	stub := &stubComplaintService{
		deleteFn: func(ctx context.Context, caller ports.Caller, id string) error { return nil },
	}
	h := NewComplaintHandler(stub)
	c, rec := newContext(http.MethodDelete, "/api/complaints/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")
	authenticate(c, "u1", "res@b.com", domain.RoleResident)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
