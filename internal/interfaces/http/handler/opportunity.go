package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	listingapp "github.com/volhub/backend/internal/application/listing"
	"github.com/volhub/backend/internal/interfaces/http/middleware"
)

// OpportunityHandler handles opportunity-related API endpoints
type OpportunityHandler struct {
	BaseHandler
	opportunityService *listingapp.OpportunityService
	requireAuth        gin.HandlerFunc
}

// NewOpportunityHandler creates a new OpportunityHandler
func NewOpportunityHandler(opportunityService *listingapp.OpportunityService, requireAuth gin.HandlerFunc) *OpportunityHandler {
	return &OpportunityHandler{
		opportunityService: opportunityService,
		requireAuth:        requireAuth,
	}
}

// RegisterRoutes registers opportunity routes. Reads are public; posting and
// modifying require an authenticated principal.
func (h *OpportunityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/opportunities", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/opportunities/:id", h.Get)
	rg.GET("/organization/:id/opportunities", h.ListByOrganization)

	rg.POST("/opportunities", h.requireAuth, h.Create)
	rg.PUT("/opportunities/:id", h.requireAuth, h.Update)
	rg.DELETE("/opportunities/:id", h.requireAuth, h.Delete)
}

// Create posts a new opportunity owned by the authenticated organization
func (h *OpportunityHandler) Create(c *gin.Context) {
	var req listingapp.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.opportunityService.Create(c.Request.Context(), req, middleware.GetPrincipal(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, response)
}

// List returns open opportunities matching the optional filters
func (h *OpportunityHandler) List(c *gin.Context) {
	var filter listingapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	responses, err := h.opportunityService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, responses)
}

// Search matches open opportunities against a free-text query
func (h *OpportunityHandler) Search(c *gin.Context) {
	responses, err := h.opportunityService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, responses)
}

// Get returns a single opportunity with its organization's public fields
func (h *OpportunityHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Opportunity not found")
		return
	}

	response, err := h.opportunityService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, response)
}

// ListByOrganization returns all opportunities posted by an organization
func (h *OpportunityHandler) ListByOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Opportunity not found")
		return
	}

	responses, err := h.opportunityService.ListByOrganization(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, responses)
}

// Update overwrites an opportunity owned by the authenticated organization
func (h *OpportunityHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Opportunity not found")
		return
	}

	var req listingapp.UpdateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.opportunityService.Update(c.Request.Context(), id, req, middleware.GetPrincipal(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, response)
}

// Delete removes an opportunity owned by the authenticated organization
func (h *OpportunityHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Opportunity not found")
		return
	}

	if err := h.opportunityService.Delete(c.Request.Context(), id, middleware.GetPrincipal(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Opportunity deleted successfully"})
}
