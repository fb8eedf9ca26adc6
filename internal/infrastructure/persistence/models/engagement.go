package models

import (
	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/engagement"
)

// ApplicationModel is the persistence model for the Application aggregate.
// The unique (volunteer_id, opportunity_id) index enforces one application
// per volunteer per opportunity.
type ApplicationModel struct {
	AggregateModel
	VolunteerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_volunteer_opportunity,priority:1"`
	OpportunityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_volunteer_opportunity,priority:2;index"`
	Message       string    `gorm:"type:text"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (ApplicationModel) TableName() string {
	return "applications"
}

// ToDomain converts the persistence model to a domain Application
func (m *ApplicationModel) ToDomain() *engagement.Application {
	return &engagement.Application{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		VolunteerID:       m.VolunteerID,
		OpportunityID:     m.OpportunityID,
		Message:           m.Message,
		Status:            engagement.ApplicationStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Application
func (m *ApplicationModel) FromDomain(a *engagement.Application) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.VolunteerID = a.VolunteerID
	m.OpportunityID = a.OpportunityID
	m.Message = a.Message
	m.Status = string(a.Status)
}
