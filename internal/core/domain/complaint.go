package domain

import "time"

// ComplaintStatus represents the lifecycle state of a complaint.
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintAssigned   ComplaintStatus = "assigned"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintRejected   ComplaintStatus = "rejected"
)

var complaintTransitions = map[ComplaintStatus][]ComplaintStatus{
	ComplaintPending:    {ComplaintAssigned, ComplaintRejected},
	ComplaintAssigned:   {ComplaintAssigned, ComplaintInProgress, ComplaintRejected},
	ComplaintInProgress: {ComplaintResolved},
}

// CanTransitionTo reports whether a complaint may move from s to next.
// Re-assigning an already assigned complaint is allowed.
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	for _, allowed := range complaintTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ComplaintCategories lists the accepted complaint categories.
var ComplaintCategories = []string{"plumbing", "electrical", "cleaning", "security", "other"}

// Complaint is a maintenance or service request raised by a resident.
type Complaint struct {
	ID          string          `json:"id"`
	Reference   string          `json:"reference"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Status      ComplaintStatus `json:"status"`
	RaisedBy    string          `json:"raisedBy"`
	AssignedTo  string          `json:"assignedTo,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
