package identity

import (
	"context"
	"errors"

	"github.com/volhub/backend/internal/domain/identity"
	"github.com/volhub/backend/internal/domain/shared"
)

// AuthService verifies per-request credentials and produces the Principal
// consumed by owner-scoped operations. There are no sessions or tokens;
// every authenticated request is checked against the identity store.
type AuthService struct {
	volunteerRepo    identity.VolunteerRepository
	organizationRepo identity.OrganizationRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(volunteerRepo identity.VolunteerRepository, organizationRepo identity.OrganizationRepository) *AuthService {
	return &AuthService{
		volunteerRepo:    volunteerRepo,
		organizationRepo: organizationRepo,
	}
}

// Authenticate verifies the credentials for the given actor kind and returns
// the resulting principal. Any failure maps to UNAUTHORIZED so callers cannot
// probe which part of the credential was wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, password string, kind identity.ActorKind) (*identity.Principal, error) {
	if email == "" || password == "" || !identity.ValidActorKind(kind) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid credentials")
	}

	switch kind {
	case identity.ActorVolunteer:
		volunteer, err := s.volunteerRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid credentials")
			}
			return nil, err
		}
		if !volunteer.VerifyPassword(password) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid credentials")
		}
		return &identity.Principal{
			ID:    volunteer.ID,
			Kind:  identity.ActorVolunteer,
			Name:  volunteer.Name,
			Email: volunteer.Email,
		}, nil

	case identity.ActorOrganization:
		organization, err := s.organizationRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid credentials")
			}
			return nil, err
		}
		if !organization.VerifyPassword(password) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid credentials")
		}
		return &identity.Principal{
			ID:    organization.ID,
			Kind:  identity.ActorOrganization,
			Name:  organization.Name,
			Email: organization.Email,
		}, nil
	}

	return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid credentials")
}
