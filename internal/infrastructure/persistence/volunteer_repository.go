package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/identity"
	"github.com/volhub/backend/internal/domain/shared"
	"github.com/volhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormVolunteerRepository implements identity.VolunteerRepository using GORM
type GormVolunteerRepository struct {
	db *gorm.DB
}

// NewGormVolunteerRepository creates a new GormVolunteerRepository
func NewGormVolunteerRepository(db *gorm.DB) *GormVolunteerRepository {
	return &GormVolunteerRepository{db: db}
}

// Create persists the volunteer and its skill links in a single transaction.
// A duplicate email hits the unique index and surfaces as ErrAlreadyExists.
func (r *GormVolunteerRepository) Create(ctx context.Context, volunteer *identity.Volunteer, skillIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.VolunteerModel
		model.FromDomain(volunteer)

		if err := tx.Create(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.ErrAlreadyExists
			}
			return err
		}

		if len(skillIDs) == 0 {
			return nil
		}

		links := make([]models.VolunteerSkillModel, 0, len(skillIDs))
		for _, skillID := range skillIDs {
			links = append(links, models.VolunteerSkillModel{
				VolunteerID: volunteer.ID,
				SkillID:     skillID,
			})
		}
		return tx.Create(&links).Error
	})
}

// FindByID finds a volunteer by its ID
func (r *GormVolunteerRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Volunteer, error) {
	var model models.VolunteerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a volunteer by email, case-insensitively
func (r *GormVolunteerRepository) FindByEmail(ctx context.Context, email string) (*identity.Volunteer, error) {
	var model models.VolunteerModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// LoadSkillNames populates the volunteer's skill names ordered by name
func (r *GormVolunteerRepository) LoadSkillNames(ctx context.Context, volunteer *identity.Volunteer) error {
	var names []string
	err := r.db.WithContext(ctx).
		Table("skills").
		Joins("JOIN volunteer_skills ON volunteer_skills.skill_id = skills.id").
		Where("volunteer_skills.volunteer_id = ?", volunteer.ID).
		Order("skills.skill_name").
		Pluck("skills.skill_name", &names).Error
	if err != nil {
		return err
	}

	if names == nil {
		names = []string{}
	}
	volunteer.SkillNames = names
	return nil
}
