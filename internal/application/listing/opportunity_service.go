package listing

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/identity"
	"github.com/volhub/backend/internal/domain/listing"
	"github.com/volhub/backend/internal/domain/shared"
)

// OpportunityService handles opportunity posting, listing and triage.
// All mutating operations require the acting principal and enforce that only
// the owning organization can change its postings.
type OpportunityService struct {
	opportunityRepo listing.OpportunityRepository
}

// NewOpportunityService creates a new OpportunityService
func NewOpportunityService(opportunityRepo listing.OpportunityRepository) *OpportunityService {
	return &OpportunityService{
		opportunityRepo: opportunityRepo,
	}
}

// Create posts a new opportunity owned by the authenticated organization
func (s *OpportunityService) Create(ctx context.Context, req CreateOpportunityRequest, principal *identity.Principal) (*OpportunityResponse, error) {
	if principal == nil || !principal.IsOrganization() {
		return nil, shared.NewDomainError("FORBIDDEN", "Only organizations can create opportunities")
	}

	opportunity, err := listing.NewOpportunity(principal.ID, req.Title, req.Description)
	if err != nil {
		return nil, err
	}
	if err := opportunity.SetDetails(req.Location, req.EventDate, req.EventTime, req.RequiredSkills); err != nil {
		return nil, err
	}

	if err := s.opportunityRepo.Create(ctx, opportunity); err != nil {
		return nil, err
	}

	response := ToOpportunityResponse(opportunity)
	return &response, nil
}

// List returns opportunities matching the filter, newest first. The status
// filter defaults to open.
func (s *OpportunityService) List(ctx context.Context, filter ListFilter) ([]OpportunityDetailResponse, error) {
	status := filter.Status
	if status == "" {
		status = listing.StatusOpen
	}

	details, err := s.opportunityRepo.FindAll(ctx, listing.Filter{
		Status:   status,
		Location: filter.Location,
		Skill:    filter.Skills,
	})
	if err != nil {
		return nil, err
	}

	return ToOpportunityDetailResponses(details), nil
}

// Get returns a single opportunity joined with its organization's public fields
func (s *OpportunityService) Get(ctx context.Context, id uuid.UUID) (*OpportunityDetailResponse, error) {
	detail, err := s.opportunityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Opportunity not found")
		}
		return nil, err
	}

	response := ToOpportunityDetailResponse(detail)
	return &response, nil
}

// ListByOrganization returns all of an organization's postings, any status,
// newest first
func (s *OpportunityService) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]OpportunityResponse, error) {
	opportunities, err := s.opportunityRepo.FindByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]OpportunityResponse, 0, len(opportunities))
	for _, o := range opportunities {
		responses = append(responses, ToOpportunityResponse(o))
	}
	return responses, nil
}

// Update performs a full overwrite of the opportunity's mutable fields.
// Only the owning organization may update.
func (s *OpportunityService) Update(ctx context.Context, id uuid.UUID, req UpdateOpportunityRequest, principal *identity.Principal) (*OpportunityResponse, error) {
	opportunity, err := s.loadOwned(ctx, id, principal)
	if err != nil {
		return nil, err
	}

	if err := opportunity.Update(req.Title, req.Description, req.Location, req.EventDate, req.EventTime, req.RequiredSkills, req.Status); err != nil {
		return nil, err
	}

	if err := s.opportunityRepo.Update(ctx, opportunity); err != nil {
		return nil, err
	}

	response := ToOpportunityResponse(opportunity)
	return &response, nil
}

// Delete removes the opportunity and, via the schema's FK cascade, its
// applications. Only the owning organization may delete.
func (s *OpportunityService) Delete(ctx context.Context, id uuid.UUID, principal *identity.Principal) error {
	if _, err := s.loadOwned(ctx, id, principal); err != nil {
		return err
	}
	return s.opportunityRepo.Delete(ctx, id)
}

// Search matches the query as a case-insensitive substring across title,
// description, location and required skills of open opportunities
func (s *OpportunityService) Search(ctx context.Context, query string) ([]OpportunityDetailResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Search query is required")
	}

	details, err := s.opportunityRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	return ToOpportunityDetailResponses(details), nil
}

// loadOwned fetches the opportunity and verifies the principal owns it
func (s *OpportunityService) loadOwned(ctx context.Context, id uuid.UUID, principal *identity.Principal) (*listing.Opportunity, error) {
	detail, err := s.opportunityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Opportunity not found")
		}
		return nil, err
	}

	if principal == nil || !principal.IsOrganization() || !detail.IsOwnedBy(principal.ID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the owning organization can modify this opportunity")
	}

	return &detail.Opportunity, nil
}
