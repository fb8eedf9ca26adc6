package engagement

import (
	"time"

	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/engagement"
)

// ApplyRequest represents a volunteer applying to an opportunity. The
// applicant comes from the authenticated principal.
type ApplyRequest struct {
	OpportunityID uuid.UUID `json:"opportunity_id"`
	Message       string    `json:"message" binding:"max=2000"`
}

// UpdateStatusRequest represents an application status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"max=50"`
}

// ApplicationResponse represents an application in API responses
type ApplicationResponse struct {
	ID            uuid.UUID `json:"id"`
	VolunteerID   uuid.UUID `json:"volunteer_id"`
	OpportunityID uuid.UUID `json:"opportunity_id"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
}

// VolunteerApplicationResponse is an application joined with the opportunity
// and organization display fields
type VolunteerApplicationResponse struct {
	ApplicationResponse
	Title            string `json:"title"`
	Description      string `json:"description"`
	Location         string `json:"location"`
	EventDate        string `json:"event_date"`
	OrganizationName string `json:"organization_name"`
}

// OpportunityApplicationResponse is an application joined with the applicant's
// display fields
type OpportunityApplicationResponse struct {
	ApplicationResponse
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

// ToApplicationResponse converts a domain application to a response DTO
func ToApplicationResponse(a *engagement.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		VolunteerID:   a.VolunteerID,
		OpportunityID: a.OpportunityID,
		Message:       a.Message,
		Status:        string(a.Status),
		AppliedAt:     a.AppliedAt(),
	}
}

// ToVolunteerApplicationResponses converts joined volunteer-side reads
func ToVolunteerApplicationResponses(applications []engagement.VolunteerApplication) []VolunteerApplicationResponse {
	responses := make([]VolunteerApplicationResponse, 0, len(applications))
	for i := range applications {
		a := &applications[i]
		responses = append(responses, VolunteerApplicationResponse{
			ApplicationResponse: ToApplicationResponse(&a.Application),
			Title:               a.OpportunityTitle,
			Description:         a.OpportunityDescription,
			Location:            a.OpportunityLocation,
			EventDate:           a.EventDate,
			OrganizationName:    a.OrganizationName,
		})
	}
	return responses
}

// ToOpportunityApplicationResponses converts joined organization-side reads
func ToOpportunityApplicationResponses(applications []engagement.OpportunityApplication) []OpportunityApplicationResponse {
	responses := make([]OpportunityApplicationResponse, 0, len(applications))
	for i := range applications {
		a := &applications[i]
		responses = append(responses, OpportunityApplicationResponse{
			ApplicationResponse: ToApplicationResponse(&a.Application),
			Name:                a.VolunteerName,
			Email:               a.VolunteerEmail,
			Phone:               a.VolunteerPhone,
			Location:            a.VolunteerLocation,
			Bio:                 a.VolunteerBio,
		})
	}
	return responses
}
