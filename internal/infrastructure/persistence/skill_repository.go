package persistence

import (
	"context"
	"errors"

	"github.com/volhub/backend/internal/domain/catalog"
	"github.com/volhub/backend/internal/domain/shared"
	"github.com/volhub/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSkillRepository implements catalog.SkillRepository using GORM
type GormSkillRepository struct {
	db *gorm.DB
}

// NewGormSkillRepository creates a new GormSkillRepository
func NewGormSkillRepository(db *gorm.DB) *GormSkillRepository {
	return &GormSkillRepository{db: db}
}

// FindAll returns every skill ordered by name
func (r *GormSkillRepository) FindAll(ctx context.Context) ([]*catalog.Skill, error) {
	var skillModels []models.SkillModel
	if err := r.db.WithContext(ctx).
		Order("skill_name").
		Find(&skillModels).Error; err != nil {
		return nil, err
	}

	skills := make([]*catalog.Skill, len(skillModels))
	for i := range skillModels {
		skills[i] = skillModels[i].ToDomain()
	}
	return skills, nil
}

// FindByName finds a skill by its exact name
func (r *GormSkillRepository) FindByName(ctx context.Context, name string) (*catalog.Skill, error) {
	var model models.SkillModel
	if err := r.db.WithContext(ctx).
		Where("skill_name = ?", name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNames returns the skills whose names exist in the catalog.
// Unknown names are skipped, not an error.
func (r *GormSkillRepository) FindByNames(ctx context.Context, names []string) ([]*catalog.Skill, error) {
	if len(names) == 0 {
		return []*catalog.Skill{}, nil
	}

	var skillModels []models.SkillModel
	if err := r.db.WithContext(ctx).
		Where("skill_name IN ?", names).
		Order("skill_name").
		Find(&skillModels).Error; err != nil {
		return nil, err
	}

	skills := make([]*catalog.Skill, len(skillModels))
	for i := range skillModels {
		skills[i] = skillModels[i].ToDomain()
	}
	return skills, nil
}
