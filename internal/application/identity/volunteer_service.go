package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/catalog"
	"github.com/volhub/backend/internal/domain/identity"
	"github.com/volhub/backend/internal/domain/shared"
)

// VolunteerService handles volunteer registration, login and profile lookup
type VolunteerService struct {
	volunteerRepo identity.VolunteerRepository
	skillRepo     catalog.SkillRepository
}

// NewVolunteerService creates a new VolunteerService
func NewVolunteerService(volunteerRepo identity.VolunteerRepository, skillRepo catalog.SkillRepository) *VolunteerService {
	return &VolunteerService{
		volunteerRepo: volunteerRepo,
		skillRepo:     skillRepo,
	}
}

// Register creates a new volunteer account. Skill names that exist in the
// catalog are attached; unknown names are skipped. The volunteer row and its
// skill links are written in a single transaction.
func (s *VolunteerService) Register(ctx context.Context, req RegisterVolunteerRequest) (*VolunteerResponse, error) {
	volunteer, err := identity.NewVolunteer(req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	volunteer.SetContactDetails(req.Phone, req.Location, req.Bio)

	var skillIDs []uuid.UUID
	if len(req.Skills) > 0 {
		skills, err := s.skillRepo.FindByNames(ctx, req.Skills)
		if err != nil {
			return nil, err
		}
		skillIDs = make([]uuid.UUID, 0, len(skills))
		names := make([]string, 0, len(skills))
		for _, skill := range skills {
			skillIDs = append(skillIDs, skill.ID)
			names = append(names, skill.Name)
		}
		volunteer.SkillNames = names
	}

	if err := s.volunteerRepo.Create(ctx, volunteer, skillIDs); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Email already registered")
		}
		return nil, err
	}

	response := ToVolunteerResponse(volunteer)
	return &response, nil
}

// Login verifies volunteer credentials and returns the record without the
// credential hash. Absent account and wrong password are indistinguishable.
func (s *VolunteerService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Email and password are required")
	}

	volunteer, err := s.volunteerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid credentials")
		}
		return nil, err
	}

	if !volunteer.VerifyPassword(req.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid credentials")
	}

	return &LoginResponse{
		User:     ToVolunteerResponse(volunteer),
		UserType: string(identity.ActorVolunteer),
	}, nil
}

// GetProfile returns a volunteer profile with its attached skill names
func (s *VolunteerService) GetProfile(ctx context.Context, id uuid.UUID) (*VolunteerResponse, error) {
	volunteer, err := s.volunteerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Volunteer not found")
		}
		return nil, err
	}

	if err := s.volunteerRepo.LoadSkillNames(ctx, volunteer); err != nil {
		return nil, err
	}

	response := ToVolunteerResponse(volunteer)
	return &response, nil
}
