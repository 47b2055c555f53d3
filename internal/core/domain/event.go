package domain

import "time"

const (
	AuditUserRegistered     = "user.registered"
	AuditUserProfileUpdated = "user.profile_updated"
	AuditUserRoleUpdated    = "user.role_updated"
	AuditComplaintCreated   = "complaint.created"
	AuditComplaintAssigned  = "complaint.assigned"
	AuditComplaintStatus    = "complaint.status_changed"
)

// AuditEvent records a state change performed on behalf of an actor.
type AuditEvent struct {
	Subject    string
	Action     string
	Actor      string
	Details    map[string]string
	OccurredAt time.Time
}
