package ports

import (
	"context"

	"github.com/societyhub/society-api/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditSink accepts audit events for asynchronous persistence.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}
