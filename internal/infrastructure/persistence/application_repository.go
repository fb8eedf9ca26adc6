package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/engagement"
	"github.com/volhub/backend/internal/domain/shared"
	"github.com/volhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormApplicationRepository implements engagement.ApplicationRepository using GORM
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewGormApplicationRepository creates a new GormApplicationRepository
func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// applicationRow holds the application columns shared by the joined reads
type applicationRow struct {
	ID            uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int
	VolunteerID   uuid.UUID
	OpportunityID uuid.UUID
	Message       string
	Status        string
}

func (row *applicationRow) toDomain() engagement.Application {
	return engagement.Application{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        row.ID,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Version: row.Version,
		},
		VolunteerID:   row.VolunteerID,
		OpportunityID: row.OpportunityID,
		Message:       row.Message,
		Status:        engagement.ApplicationStatus(row.Status),
	}
}

type volunteerApplicationRow struct {
	applicationRow
	OpportunityTitle       string
	OpportunityDescription string
	OpportunityLocation    string
	EventDate              string
	OrganizationName       string
}

type opportunityApplicationRow struct {
	applicationRow
	VolunteerName     string
	VolunteerEmail    string
	VolunteerPhone    string
	VolunteerLocation string
	VolunteerBio      string
}

// Create persists the application. A second application from the same
// volunteer to the same opportunity hits the unique index and surfaces as
// ErrAlreadyExists.
func (r *GormApplicationRepository) Create(ctx context.Context, application *engagement.Application) error {
	var model models.ApplicationModel
	model.FromDomain(application)

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update overwrites the application's status
func (r *GormApplicationRepository) Update(ctx context.Context, application *engagement.Application) error {
	result := r.db.WithContext(ctx).
		Model(&models.ApplicationModel{}).
		Where("id = ?", application.ID).
		Updates(map[string]any{
			"status":     string(application.Status),
			"updated_at": application.UpdatedAt,
			"version":    application.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an application by its ID
func (r *GormApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*engagement.Application, error) {
	var model models.ApplicationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByVolunteer lists a volunteer's applications with opportunity and
// organization display fields, newest applied first
func (r *GormApplicationRepository) FindByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]engagement.VolunteerApplication, error) {
	var rows []volunteerApplicationRow
	err := r.db.WithContext(ctx).
		Table("applications").
		Select(`applications.id, applications.created_at, applications.updated_at, applications.version,
applications.volunteer_id, applications.opportunity_id, applications.message, applications.status,
opportunities.title AS opportunity_title, opportunities.description AS opportunity_description,
opportunities.location AS opportunity_location, opportunities.event_date,
organizations.name AS organization_name`).
		Joins("JOIN opportunities ON opportunities.id = applications.opportunity_id").
		Joins("JOIN organizations ON organizations.id = opportunities.organization_id").
		Where("applications.volunteer_id = ?", volunteerID).
		Order("applications.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	applications := make([]engagement.VolunteerApplication, len(rows))
	for i := range rows {
		applications[i] = engagement.VolunteerApplication{
			Application:            rows[i].toDomain(),
			OpportunityTitle:       rows[i].OpportunityTitle,
			OpportunityDescription: rows[i].OpportunityDescription,
			OpportunityLocation:    rows[i].OpportunityLocation,
			EventDate:              rows[i].EventDate,
			OrganizationName:       rows[i].OrganizationName,
		}
	}
	return applications, nil
}

// FindByOpportunity lists applications to an opportunity with applicant
// display fields, newest applied first
func (r *GormApplicationRepository) FindByOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]engagement.OpportunityApplication, error) {
	var rows []opportunityApplicationRow
	err := r.db.WithContext(ctx).
		Table("applications").
		Select(`applications.id, applications.created_at, applications.updated_at, applications.version,
applications.volunteer_id, applications.opportunity_id, applications.message, applications.status,
volunteers.name AS volunteer_name, volunteers.email AS volunteer_email, volunteers.phone AS volunteer_phone,
volunteers.location AS volunteer_location, volunteers.bio AS volunteer_bio`).
		Joins("JOIN volunteers ON volunteers.id = applications.volunteer_id").
		Where("applications.opportunity_id = ?", opportunityID).
		Order("applications.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	applications := make([]engagement.OpportunityApplication, len(rows))
	for i := range rows {
		applications[i] = engagement.OpportunityApplication{
			Application:       rows[i].toDomain(),
			VolunteerName:     rows[i].VolunteerName,
			VolunteerEmail:    rows[i].VolunteerEmail,
			VolunteerPhone:    rows[i].VolunteerPhone,
			VolunteerLocation: rows[i].VolunteerLocation,
			VolunteerBio:      rows[i].VolunteerBio,
		}
	}
	return applications, nil
}
