package engagement

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/engagement"
	"github.com/volhub/backend/internal/domain/identity"
	"github.com/volhub/backend/internal/domain/listing"
	"github.com/volhub/backend/internal/domain/shared"
)

// ApplicationService handles volunteer applications and their triage.
// Ownership rules: volunteers see and withdraw their own applications, the
// opportunity's organization sees and triages applications to its postings.
type ApplicationService struct {
	applicationRepo engagement.ApplicationRepository
	opportunityRepo listing.OpportunityRepository
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(applicationRepo engagement.ApplicationRepository, opportunityRepo listing.OpportunityRepository) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		opportunityRepo: opportunityRepo,
	}
}

// Apply submits an application from the authenticated volunteer. The unique
// (volunteer, opportunity) constraint is the sole duplicate check.
func (s *ApplicationService) Apply(ctx context.Context, req ApplyRequest, principal *identity.Principal) (*ApplicationResponse, error) {
	if principal == nil || !principal.IsVolunteer() {
		return nil, shared.NewDomainError("FORBIDDEN", "Only volunteers can apply for opportunities")
	}

	application, err := engagement.NewApplication(principal.ID, req.OpportunityID, req.Message)
	if err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Already applied for this opportunity")
		}
		return nil, err
	}

	response := ToApplicationResponse(application)
	return &response, nil
}

// ListByVolunteer returns a volunteer's applications, newest applied first.
// Volunteers may only list their own.
func (s *ApplicationService) ListByVolunteer(ctx context.Context, volunteerID uuid.UUID, principal *identity.Principal) ([]VolunteerApplicationResponse, error) {
	if principal == nil || !principal.IsVolunteer() || principal.ID != volunteerID {
		return nil, shared.NewDomainError("FORBIDDEN", "You can only view your own applications")
	}

	applications, err := s.applicationRepo.FindByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	return ToVolunteerApplicationResponses(applications), nil
}

// ListByOpportunity returns the applications to an opportunity, newest applied
// first. Restricted to the opportunity's owning organization.
func (s *ApplicationService) ListByOpportunity(ctx context.Context, opportunityID uuid.UUID, principal *identity.Principal) ([]OpportunityApplicationResponse, error) {
	opportunity, err := s.opportunityRepo.FindByID(ctx, opportunityID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Opportunity not found")
		}
		return nil, err
	}

	if principal == nil || !principal.IsOrganization() || !opportunity.IsOwnedBy(principal.ID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the owning organization can view these applications")
	}

	applications, err := s.applicationRepo.FindByOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, err
	}

	return ToOpportunityApplicationResponses(applications), nil
}

// UpdateStatus changes an application's status. The owning organization may
// set any valid status; the applying volunteer may only withdraw their own
// application. Unknown statuses are rejected before any store access.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest, principal *identity.Principal) (*ApplicationResponse, error) {
	status := engagement.ApplicationStatus(req.Status)
	if !engagement.ValidStatus(status) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid status")
	}

	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Application not found")
		}
		return nil, err
	}

	if err := s.authorizeStatusChange(ctx, application, status, principal); err != nil {
		return nil, err
	}

	if err := application.SetStatus(status); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	response := ToApplicationResponse(application)
	return &response, nil
}

func (s *ApplicationService) authorizeStatusChange(ctx context.Context, application *engagement.Application, status engagement.ApplicationStatus, principal *identity.Principal) error {
	if principal == nil {
		return shared.NewDomainError("FORBIDDEN", "Not allowed to update this application")
	}

	if principal.IsVolunteer() {
		if principal.ID == application.VolunteerID && status == engagement.StatusWithdrawn {
			return nil
		}
		return shared.NewDomainError("FORBIDDEN", "Volunteers can only withdraw their own applications")
	}

	opportunity, err := s.opportunityRepo.FindByID(ctx, application.OpportunityID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Opportunity not found")
		}
		return err
	}
	if !opportunity.IsOwnedBy(principal.ID) {
		return shared.NewDomainError("FORBIDDEN", "Only the owning organization can triage this application")
	}

	return nil
}
