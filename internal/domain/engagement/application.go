package engagement

import (
	"time"

	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/shared"
)

// ApplicationStatus represents the status of an application
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"   // Initial state on submission
	StatusAccepted  ApplicationStatus = "accepted"  // Organization accepted
	StatusRejected  ApplicationStatus = "rejected"  // Organization rejected
	StatusWithdrawn ApplicationStatus = "withdrawn" // Volunteer withdrew
)

// ValidStatus reports whether s is one of the known application statuses
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Application represents a volunteer's application to an opportunity.
// A volunteer may apply to a given opportunity at most once; the store
// enforces this with a unique constraint.
type Application struct {
	shared.BaseAggregateRoot
	VolunteerID   uuid.UUID
	OpportunityID uuid.UUID
	Message       string
	Status        ApplicationStatus
}

// NewApplication creates a pending application
func NewApplication(volunteerID, opportunityID uuid.UUID, message string) (*Application, error) {
	if volunteerID == uuid.Nil || opportunityID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Volunteer and opportunity are required")
	}

	return &Application{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		VolunteerID:       volunteerID,
		OpportunityID:     opportunityID,
		Message:           message,
		Status:            StatusPending,
	}, nil
}

// SetStatus overwrites the status. Any valid status may replace any other;
// there is no transition table.
func (a *Application) SetStatus(status ApplicationStatus) error {
	if !ValidStatus(status) {
		return shared.NewDomainError("VALIDATION_ERROR", "Invalid status")
	}

	a.Status = status
	a.Touch()

	return nil
}

// AppliedAt returns the submission time
func (a *Application) AppliedAt() time.Time {
	return a.CreatedAt
}
