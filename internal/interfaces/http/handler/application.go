package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	engagementapp "github.com/volhub/backend/internal/application/engagement"
	"github.com/volhub/backend/internal/interfaces/http/middleware"
)

// ApplicationHandler handles application-related API endpoints
type ApplicationHandler struct {
	BaseHandler
	applicationService *engagementapp.ApplicationService
	requireAuth        gin.HandlerFunc
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationService *engagementapp.ApplicationService, requireAuth gin.HandlerFunc) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		requireAuth:        requireAuth,
	}
}

// RegisterRoutes registers application routes. Every application operation is
// owner scoped, so all of them authenticate.
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.requireAuth, h.Apply)
	rg.PUT("/applications/:id", h.requireAuth, h.UpdateStatus)
	rg.GET("/volunteer/:id/applications", h.requireAuth, h.ListByVolunteer)
	rg.GET("/opportunities/:id/applications", h.requireAuth, h.ListByOpportunity)
}

// Apply submits the authenticated volunteer's application to an opportunity
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req engagementapp.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.applicationService.Apply(c.Request.Context(), req, middleware.GetPrincipal(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, response)
}

// UpdateStatus overwrites an application's status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Application not found")
		return
	}

	var req engagementapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.applicationService.UpdateStatus(c.Request.Context(), id, req, middleware.GetPrincipal(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, response)
}

// ListByVolunteer returns the volunteer's own applications with opportunity
// display fields
func (h *ApplicationHandler) ListByVolunteer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Volunteer not found")
		return
	}

	responses, err := h.applicationService.ListByVolunteer(c.Request.Context(), id, middleware.GetPrincipal(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, responses)
}

// ListByOpportunity returns the applications submitted to an opportunity the
// authenticated organization owns
func (h *ApplicationHandler) ListByOpportunity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Opportunity not found")
		return
	}

	responses, err := h.applicationService.ListByOpportunity(c.Request.Context(), id, middleware.GetPrincipal(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, responses)
}
