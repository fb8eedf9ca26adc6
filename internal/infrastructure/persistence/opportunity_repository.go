package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/listing"
	"github.com/volhub/backend/internal/domain/shared"
	"github.com/volhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOpportunityRepository implements listing.OpportunityRepository using GORM
type GormOpportunityRepository struct {
	db *gorm.DB
}

// NewGormOpportunityRepository creates a new GormOpportunityRepository
func NewGormOpportunityRepository(db *gorm.DB) *GormOpportunityRepository {
	return &GormOpportunityRepository{db: db}
}

// opportunityDetailRow is the flat scan target for joined opportunity reads
type opportunityDetailRow struct {
	ID                   uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Version              int
	OrganizationID       uuid.UUID
	Title                string
	Description          string
	Location             string
	EventDate            string
	EventTime            string
	RequiredSkills       string
	Status               string
	OrganizationName     string
	OrganizationEmail    string
	OrganizationLocation string
}

const opportunityDetailSelect = `opportunities.id, opportunities.created_at, opportunities.updated_at,
opportunities.version, opportunities.organization_id, opportunities.title, opportunities.description,
opportunities.location, opportunities.event_date, opportunities.event_time, opportunities.required_skills,
opportunities.status, organizations.name AS organization_name, organizations.email AS organization_email,
organizations.location AS organization_location`

func (row *opportunityDetailRow) toDomain() listing.OpportunityDetail {
	return listing.OpportunityDetail{
		Opportunity: listing.Opportunity{
			BaseAggregateRoot: shared.BaseAggregateRoot{
				BaseEntity: shared.BaseEntity{
					ID:        row.ID,
					CreatedAt: row.CreatedAt,
					UpdatedAt: row.UpdatedAt,
				},
				Version: row.Version,
			},
			OrganizationID: row.OrganizationID,
			Title:          row.Title,
			Description:    row.Description,
			Location:       row.Location,
			EventDate:      row.EventDate,
			EventTime:      row.EventTime,
			RequiredSkills: row.RequiredSkills,
			Status:         row.Status,
		},
		OrganizationName:     row.OrganizationName,
		OrganizationEmail:    row.OrganizationEmail,
		OrganizationLocation: row.OrganizationLocation,
	}
}

func (r *GormOpportunityRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("opportunities").
		Select(opportunityDetailSelect).
		Joins("JOIN organizations ON organizations.id = opportunities.organization_id")
}

// Create persists a new opportunity
func (r *GormOpportunityRepository) Create(ctx context.Context, opportunity *listing.Opportunity) error {
	var model models.OpportunityModel
	model.FromDomain(opportunity)
	return r.db.WithContext(ctx).Create(&model).Error
}

// Update overwrites an existing opportunity
func (r *GormOpportunityRepository) Update(ctx context.Context, opportunity *listing.Opportunity) error {
	var model models.OpportunityModel
	model.FromDomain(opportunity)

	result := r.db.WithContext(ctx).
		Model(&models.OpportunityModel{}).
		Where("id = ?", opportunity.ID).
		Select("title", "description", "location", "event_date", "event_time", "required_skills", "status", "updated_at", "version").
		Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the opportunity; dependent applications go with it via the
// FK cascade declared in the schema
func (r *GormOpportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.OpportunityModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID returns the opportunity joined with its organization's public fields
func (r *GormOpportunityRepository) FindByID(ctx context.Context, id uuid.UUID) (*listing.OpportunityDetail, error) {
	var row opportunityDetailRow
	if err := r.detailQuery(ctx).
		Where("opportunities.id = ?", id).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	detail := row.toDomain()
	return &detail, nil
}

// FindAll lists opportunities matching the filter, newest first
func (r *GormOpportunityRepository) FindAll(ctx context.Context, filter listing.Filter) ([]listing.OpportunityDetail, error) {
	query := r.detailQuery(ctx).Where("opportunities.status = ?", filter.Status)

	if filter.Location != "" {
		query = query.Where("opportunities.location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Skill != "" {
		query = query.Where("opportunities.required_skills ILIKE ?", "%"+filter.Skill+"%")
	}

	var rows []opportunityDetailRow
	if err := query.Order("opportunities.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	details := make([]listing.OpportunityDetail, len(rows))
	for i := range rows {
		details[i] = rows[i].toDomain()
	}
	return details, nil
}

// FindByOrganization lists an organization's opportunities, newest first
func (r *GormOpportunityRepository) FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*listing.Opportunity, error) {
	var opportunityModels []models.OpportunityModel
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Find(&opportunityModels).Error; err != nil {
		return nil, err
	}

	opportunities := make([]*listing.Opportunity, len(opportunityModels))
	for i := range opportunityModels {
		opportunities[i] = opportunityModels[i].ToDomain()
	}
	return opportunities, nil
}

// Search matches the query as a case-insensitive substring across title,
// description, location and required skills of open opportunities
func (r *GormOpportunityRepository) Search(ctx context.Context, query string) ([]listing.OpportunityDetail, error) {
	pattern := "%" + query + "%"

	var rows []opportunityDetailRow
	err := r.detailQuery(ctx).
		Where("(opportunities.title ILIKE ? OR opportunities.description ILIKE ? OR opportunities.location ILIKE ? OR opportunities.required_skills ILIKE ?)",
			pattern, pattern, pattern, pattern).
		Where("opportunities.status = ?", listing.StatusOpen).
		Order("opportunities.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	details := make([]listing.OpportunityDetail, len(rows))
	for i := range rows {
		details[i] = rows[i].toDomain()
	}
	return details, nil
}
