package listing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/shared"
)

// Opportunity statuses. Status is free-form text defaulting to "open";
// listings treat anything other than "open" as not publicly visible.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Date and time layouts for event scheduling fields
const (
	EventDateLayout = "2006-01-02"
	EventTimeLayout = "15:04"
)

// Opportunity represents a volunteer opportunity posted by an organization.
// OrganizationID is set at creation and never changes.
type Opportunity struct {
	shared.BaseAggregateRoot
	OrganizationID uuid.UUID
	Title          string
	Description    string
	Location       string
	EventDate      string
	EventTime      string
	RequiredSkills string
	Status         string
}

// NewOpportunity creates a new opportunity owned by the given organization
func NewOpportunity(organizationID uuid.UUID, title, description string) (*Opportunity, error) {
	if organizationID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Title, description, and organization are required")
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Title, description, and organization are required")
	}

	return &Opportunity{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrganizationID:    organizationID,
		Title:             strings.TrimSpace(title),
		Description:       description,
		Status:            StatusOpen,
	}, nil
}

// SetDetails overwrites the optional listing fields
func (o *Opportunity) SetDetails(location, eventDate, eventTime, requiredSkills string) error {
	if err := validateEventDate(eventDate); err != nil {
		return err
	}
	if err := validateEventTime(eventTime); err != nil {
		return err
	}

	o.Location = strings.TrimSpace(location)
	o.EventDate = eventDate
	o.EventTime = eventTime
	o.RequiredSkills = requiredSkills
	o.Touch()

	return nil
}

// Update performs a full overwrite of the mutable fields
func (o *Opportunity) Update(title, description, location, eventDate, eventTime, requiredSkills, status string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Title, description, and organization are required")
	}
	if err := validateEventDate(eventDate); err != nil {
		return err
	}
	if err := validateEventTime(eventTime); err != nil {
		return err
	}

	if status == "" {
		status = StatusOpen
	}

	o.Title = strings.TrimSpace(title)
	o.Description = description
	o.Location = strings.TrimSpace(location)
	o.EventDate = eventDate
	o.EventTime = eventTime
	o.RequiredSkills = requiredSkills
	o.Status = status
	o.Touch()

	return nil
}

// IsOwnedBy reports whether the opportunity belongs to the given organization
func (o *Opportunity) IsOwnedBy(organizationID uuid.UUID) bool {
	return o.OrganizationID == organizationID
}

// IsOpen reports whether the opportunity accepts applications
func (o *Opportunity) IsOpen() bool {
	return o.Status == StatusOpen
}

func validateEventDate(eventDate string) error {
	if eventDate == "" {
		return nil
	}
	if _, err := time.Parse(EventDateLayout, eventDate); err != nil {
		return shared.NewDomainError("VALIDATION_ERROR", "Event date must be in YYYY-MM-DD format")
	}
	return nil
}

func validateEventTime(eventTime string) error {
	if eventTime == "" {
		return nil
	}
	if _, err := time.Parse(EventTimeLayout, eventTime); err != nil {
		return shared.NewDomainError("VALIDATION_ERROR", "Event time must be in HH:MM format")
	}
	return nil
}
