package listing

import (
	"context"

	"github.com/google/uuid"
)

// OpportunityDetail is an opportunity enriched with the owning organization's
// public display fields, as produced by a joined read.
type OpportunityDetail struct {
	Opportunity
	OrganizationName     string
	OrganizationEmail    string
	OrganizationLocation string
}

// Filter narrows public opportunity listings. Zero values mean "no filter";
// Status defaults to open. Location and Skill are matched as case-insensitive
// substrings.
type Filter struct {
	Status   string
	Location string
	Skill    string
}

// OpportunityRepository defines persistence operations for opportunities
type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *Opportunity) error
	Update(ctx context.Context, opportunity *Opportunity) error
	// Delete removes the opportunity; dependent applications go with it
	// via the schema's FK cascade.
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*OpportunityDetail, error)
	// FindAll lists opportunities matching the filter, newest first
	FindAll(ctx context.Context, filter Filter) ([]OpportunityDetail, error)
	// FindByOrganization lists an organization's opportunities across all
	// statuses, newest first
	FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*Opportunity, error)
	// Search matches the query as a case-insensitive substring over title,
	// description, location and required skills of open opportunities
	Search(ctx context.Context, query string) ([]OpportunityDetail, error)
}
