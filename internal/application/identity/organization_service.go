package identity

import (
	"context"
	"errors"

	"github.com/volhub/backend/internal/domain/identity"
	"github.com/volhub/backend/internal/domain/shared"
)

// OrganizationService handles organization registration and login
type OrganizationService struct {
	organizationRepo identity.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(organizationRepo identity.OrganizationRepository) *OrganizationService {
	return &OrganizationService{
		organizationRepo: organizationRepo,
	}
}

// Register creates a new organization account
func (s *OrganizationService) Register(ctx context.Context, req RegisterOrganizationRequest) (*OrganizationResponse, error) {
	organization, err := identity.NewOrganization(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	organization.SetProfile(req.Description, req.Location, req.Website)

	if err := s.organizationRepo.Create(ctx, organization); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Email already registered")
		}
		return nil, err
	}

	response := ToOrganizationResponse(organization)
	return &response, nil
}

// Login verifies organization credentials and returns the record without the
// credential hash
func (s *OrganizationService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Email and password are required")
	}

	organization, err := s.organizationRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid credentials")
		}
		return nil, err
	}

	if !organization.VerifyPassword(req.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid credentials")
	}

	return &LoginResponse{
		User:     ToOrganizationResponse(organization),
		UserType: string(identity.ActorOrganization),
	}, nil
}
