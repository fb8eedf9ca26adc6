package catalog

import (
	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/catalog"
)

// SkillResponse represents a catalog skill in API responses
type SkillResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"skill_name"`
}

// ToSkillResponse converts a domain skill to a response DTO
func ToSkillResponse(s *catalog.Skill) SkillResponse {
	return SkillResponse{
		ID:   s.ID,
		Name: s.Name,
	}
}

// ToSkillResponses converts a slice of domain skills to response DTOs
func ToSkillResponses(skills []*catalog.Skill) []SkillResponse {
	responses := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		responses = append(responses, ToSkillResponse(s))
	}
	return responses
}
