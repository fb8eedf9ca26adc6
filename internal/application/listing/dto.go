package listing

import (
	"time"

	"github.com/google/uuid"
	"github.com/volhub/backend/internal/domain/listing"
)

// CreateOpportunityRequest represents a request to post a new opportunity.
// The owning organization comes from the authenticated principal, never from
// the request body.
type CreateOpportunityRequest struct {
	Title          string `json:"title" binding:"max=200"`
	Description    string `json:"description" binding:"max=5000"`
	Location       string `json:"location" binding:"max=200"`
	EventDate      string `json:"event_date" binding:"max=10"`
	EventTime      string `json:"event_time" binding:"max=5"`
	RequiredSkills string `json:"required_skills" binding:"max=500"`
}

// UpdateOpportunityRequest represents a full-field overwrite of an opportunity
type UpdateOpportunityRequest struct {
	Title          string `json:"title" binding:"max=200"`
	Description    string `json:"description" binding:"max=5000"`
	Location       string `json:"location" binding:"max=200"`
	EventDate      string `json:"event_date" binding:"max=10"`
	EventTime      string `json:"event_time" binding:"max=5"`
	RequiredSkills string `json:"required_skills" binding:"max=500"`
	Status         string `json:"status" binding:"max=50"`
}

// ListFilter represents query filters for the public opportunity listing
type ListFilter struct {
	Location string `form:"location"`
	Skills   string `form:"skills"`
	Status   string `form:"status"`
}

// OpportunityResponse represents an opportunity in API responses
type OpportunityResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	EventDate      string    `json:"event_date"`
	EventTime      string    `json:"event_time"`
	RequiredSkills string    `json:"required_skills"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// OpportunityDetailResponse is an opportunity joined with the owning
// organization's public display fields
type OpportunityDetailResponse struct {
	OpportunityResponse
	OrganizationName     string `json:"organization_name"`
	OrganizationEmail    string `json:"organization_email,omitempty"`
	OrganizationLocation string `json:"org_location,omitempty"`
}

// ToOpportunityResponse converts a domain opportunity to a response DTO
func ToOpportunityResponse(o *listing.Opportunity) OpportunityResponse {
	return OpportunityResponse{
		ID:             o.ID,
		OrganizationID: o.OrganizationID,
		Title:          o.Title,
		Description:    o.Description,
		Location:       o.Location,
		EventDate:      o.EventDate,
		EventTime:      o.EventTime,
		RequiredSkills: o.RequiredSkills,
		Status:         o.Status,
		CreatedAt:      o.CreatedAt,
	}
}

// ToOpportunityDetailResponse converts a joined read to a response DTO
func ToOpportunityDetailResponse(d *listing.OpportunityDetail) OpportunityDetailResponse {
	return OpportunityDetailResponse{
		OpportunityResponse:  ToOpportunityResponse(&d.Opportunity),
		OrganizationName:     d.OrganizationName,
		OrganizationEmail:    d.OrganizationEmail,
		OrganizationLocation: d.OrganizationLocation,
	}
}

// ToOpportunityDetailResponses converts a slice of joined reads
func ToOpportunityDetailResponses(details []listing.OpportunityDetail) []OpportunityDetailResponse {
	responses := make([]OpportunityDetailResponse, 0, len(details))
	for i := range details {
		responses = append(responses, ToOpportunityDetailResponse(&details[i]))
	}
	return responses
}
