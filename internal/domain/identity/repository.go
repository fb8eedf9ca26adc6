package identity

import (
	"context"

	"github.com/google/uuid"
)

// VolunteerRepository defines persistence operations for volunteers
type VolunteerRepository interface {
	// Create persists the volunteer together with its skill links in a
	// single transaction. A duplicate email surfaces as shared.ErrAlreadyExists.
	Create(ctx context.Context, volunteer *Volunteer, skillIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Volunteer, error)
	FindByEmail(ctx context.Context, email string) (*Volunteer, error)
	// LoadSkillNames populates SkillNames ordered by name
	LoadSkillNames(ctx context.Context, volunteer *Volunteer) error
}

// OrganizationRepository defines persistence operations for organizations
type OrganizationRepository interface {
	Create(ctx context.Context, organization *Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	FindByEmail(ctx context.Context, email string) (*Organization, error)
}
