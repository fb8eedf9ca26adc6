package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/identity"
)

// =============================================================================
// Volunteer DTOs
// =============================================================================

// RegisterVolunteerRequest represents a volunteer registration payload.
// The required trio (name, email, password) is validated by the domain so the
// original error message is preserved; binding only bounds field sizes.
type RegisterVolunteerRequest struct {
	Name     string   `json:"name" binding:"max=200"`
	Email    string   `json:"email" binding:"max=200"`
	Password string   `json:"password" binding:"max=200"`
	Phone    string   `json:"phone" binding:"max=50"`
	Location string   `json:"location" binding:"max=200"`
	Bio      string   `json:"bio" binding:"max=2000"`
	Skills   []string `json:"skills" binding:"max=50,dive,max=100"`
}

// VolunteerResponse represents a volunteer in API responses.
// The credential hash is never included.
type VolunteerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Bio       string    `json:"bio"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}

// ToVolunteerResponse converts a domain volunteer to a response DTO
func ToVolunteerResponse(v *identity.Volunteer) VolunteerResponse {
	skills := v.SkillNames
	if skills == nil {
		skills = []string{}
	}
	return VolunteerResponse{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		Location:  v.Location,
		Bio:       v.Bio,
		Skills:    skills,
		CreatedAt: v.CreatedAt,
	}
}

// =============================================================================
// Organization DTOs
// =============================================================================

// RegisterOrganizationRequest represents an organization registration payload
type RegisterOrganizationRequest struct {
	Name        string `json:"name" binding:"max=200"`
	Email       string `json:"email" binding:"max=200"`
	Password    string `json:"password" binding:"max=200"`
	Description string `json:"description" binding:"max=2000"`
	Location    string `json:"location" binding:"max=200"`
	Website     string `json:"website" binding:"max=500"`
}

// OrganizationResponse represents an organization in API responses
type OrganizationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToOrganizationResponse converts a domain organization to a response DTO
func ToOrganizationResponse(o *identity.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:          o.ID,
		Name:        o.Name,
		Email:       o.Email,
		Description: o.Description,
		Location:    o.Location,
		Website:     o.Website,
		CreatedAt:   o.CreatedAt,
	}
}

// =============================================================================
// Login DTOs
// =============================================================================

// LoginRequest represents a login payload for either actor kind
type LoginRequest struct {
	Email    string `json:"email" binding:"max=200"`
	Password string `json:"password" binding:"max=200"`
}

// LoginResponse wraps the authenticated record and its actor kind
type LoginResponse struct {
	User     any    `json:"user"`
	UserType string `json:"userType"`
}
