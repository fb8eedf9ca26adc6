package models

import (
	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/listing"
)

// OpportunityModel is the persistence model for the Opportunity aggregate.
// Applications reference it with ON DELETE CASCADE so deleting a posting
// removes its applications at the store level.
type OpportunityModel struct {
	AggregateModel
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(200);not null"`
	Description    string    `gorm:"type:text;not null"`
	Location       string    `gorm:"type:varchar(200)"`
	EventDate      string    `gorm:"type:varchar(10)"`
	EventTime      string    `gorm:"type:varchar(5)"`
	RequiredSkills string    `gorm:"type:varchar(500)"`
	Status         string    `gorm:"type:varchar(50);not null;default:'open';index"`
}

// TableName returns the table name for GORM
func (OpportunityModel) TableName() string {
	return "opportunities"
}

// ToDomain converts the persistence model to a domain Opportunity
func (m *OpportunityModel) ToDomain() *listing.Opportunity {
	return &listing.Opportunity{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OrganizationID:    m.OrganizationID,
		Title:             m.Title,
		Description:       m.Description,
		Location:          m.Location,
		EventDate:         m.EventDate,
		EventTime:         m.EventTime,
		RequiredSkills:    m.RequiredSkills,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Opportunity
func (m *OpportunityModel) FromDomain(o *listing.Opportunity) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrganizationID = o.OrganizationID
	m.Title = o.Title
	m.Description = o.Description
	m.Location = o.Location
	m.EventDate = o.EventDate
	m.EventTime = o.EventTime
	m.RequiredSkills = o.RequiredSkills
	m.Status = o.Status
}
