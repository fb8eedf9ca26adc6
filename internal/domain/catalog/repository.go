package catalog

import (
	"context"
)

// SkillRepository defines persistence operations for the skill catalog
type SkillRepository interface {
	// FindAll returns every skill ordered by name
	FindAll(ctx context.Context) ([]*Skill, error)
	// FindByName returns shared.ErrNotFound when the name is not in the catalog
	FindByName(ctx context.Context, name string) (*Skill, error)
	// FindByNames returns only the skills that exist; unknown names are skipped
	FindByNames(ctx context.Context, names []string) ([]*Skill, error)
}
