package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/identity"
)

// VolunteerModel is the persistence model for the Volunteer aggregate.
type VolunteerModel struct {
	AggregateModel
	Name         string `gorm:"type:varchar(200);not null"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex:idx_volunteers_email"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	Phone        string `gorm:"type:varchar(50)"`
	Location     string `gorm:"type:varchar(200)"`
	Bio          string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (VolunteerModel) TableName() string {
	return "volunteers"
}

// ToDomain converts the persistence model to a domain Volunteer
func (m *VolunteerModel) ToDomain() *identity.Volunteer {
	return &identity.Volunteer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Phone:             m.Phone,
		Location:          m.Location,
		Bio:               m.Bio,
	}
}

// FromDomain populates the persistence model from a domain Volunteer
func (m *VolunteerModel) FromDomain(v *identity.Volunteer) {
	m.FromDomainAggregateRoot(v.BaseAggregateRoot)
	m.Name = v.Name
	m.Email = v.Email
	m.PasswordHash = v.PasswordHash
	m.Phone = v.Phone
	m.Location = v.Location
	m.Bio = v.Bio
}

// OrganizationModel is the persistence model for the Organization aggregate.
type OrganizationModel struct {
	AggregateModel
	Name         string `gorm:"type:varchar(200);not null"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex:idx_organizations_email"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	Description  string `gorm:"type:text"`
	Location     string `gorm:"type:varchar(200)"`
	Website      string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (OrganizationModel) TableName() string {
	return "organizations"
}

// ToDomain converts the persistence model to a domain Organization
func (m *OrganizationModel) ToDomain() *identity.Organization {
	return &identity.Organization{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Description:       m.Description,
		Location:          m.Location,
		Website:           m.Website,
	}
}

// FromDomain populates the persistence model from a domain Organization
func (m *OrganizationModel) FromDomain(o *identity.Organization) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.Name = o.Name
	m.Email = o.Email
	m.PasswordHash = o.PasswordHash
	m.Description = o.Description
	m.Location = o.Location
	m.Website = o.Website
}

// VolunteerSkillModel links a volunteer to a catalog skill.
type VolunteerSkillModel struct {
	VolunteerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SkillID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (VolunteerSkillModel) TableName() string {
	return "volunteer_skills"
}
