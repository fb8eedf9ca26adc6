package catalog

import (
	"strings"

	"github.com/volhub/backend/internal/domain/shared"
)

// Skill is a reference entry in the skill catalog. The catalog is seeded by
// migration and matched by exact name during volunteer registration.
type Skill struct {
	shared.BaseEntity
	Name string
}

// NewSkill creates a new catalog skill
func NewSkill(name string) (*Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Skill name is required")
	}

	return &Skill{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}
