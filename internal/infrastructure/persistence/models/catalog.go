package models

import (
	"github.com/volhub/backend/internal/domain/catalog"
)

// SkillModel is the persistence model for a catalog skill.
type SkillModel struct {
	BaseModel
	Name string `gorm:"column:skill_name;type:varchar(100);not null;uniqueIndex:idx_skills_name"`
}

// TableName returns the table name for GORM
func (SkillModel) TableName() string {
	return "skills"
}

// ToDomain converts the persistence model to a domain Skill
func (m *SkillModel) ToDomain() *catalog.Skill {
	return &catalog.Skill{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// FromDomain populates the persistence model from a domain Skill
func (m *SkillModel) FromDomain(s *catalog.Skill) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
}
