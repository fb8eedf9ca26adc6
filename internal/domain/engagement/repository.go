package engagement

import (
	"context"

	"github.com/google/uuid"
)

// VolunteerApplication is an application enriched with the opportunity and
// organization display fields, as shown on a volunteer's application list.
type VolunteerApplication struct {
	Application
	OpportunityTitle       string
	OpportunityDescription string
	OpportunityLocation    string
	EventDate              string
	OrganizationName       string
}

// OpportunityApplication is an application enriched with the applicant's
// display fields, as shown on an organization's triage list.
type OpportunityApplication struct {
	Application
	VolunteerName     string
	VolunteerEmail    string
	VolunteerPhone    string
	VolunteerLocation string
	VolunteerBio      string
}

// ApplicationRepository defines persistence operations for applications
type ApplicationRepository interface {
	// Create persists the application. A second application from the same
	// volunteer to the same opportunity surfaces as shared.ErrAlreadyExists.
	Create(ctx context.Context, application *Application) error
	Update(ctx context.Context, application *Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*Application, error)
	// FindByVolunteer lists a volunteer's applications, newest applied first
	FindByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]VolunteerApplication, error)
	// FindByOpportunity lists applications to an opportunity, newest applied first
	FindByOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]OpportunityApplication, error)
}
