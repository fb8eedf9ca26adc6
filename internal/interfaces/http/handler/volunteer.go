package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	identityapp "github.com/volhub/backend/internal/application/identity"
)

// VolunteerHandler handles volunteer-related API endpoints
type VolunteerHandler struct {
	BaseHandler
	volunteerService *identityapp.VolunteerService
}

// NewVolunteerHandler creates a new VolunteerHandler
func NewVolunteerHandler(volunteerService *identityapp.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{
		volunteerService: volunteerService,
	}
}

// RegisterRoutes registers volunteer routes. Registration, login and the
// public profile need no authentication.
func (h *VolunteerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/volunteer/register", h.Register)
	rg.POST("/volunteer/login", h.Login)
	rg.GET("/volunteer/:id", h.GetProfile)
}

// Register creates a new volunteer account
func (h *VolunteerHandler) Register(c *gin.Context) {
	var req identityapp.RegisterVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.volunteerService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, response)
}

// Login verifies volunteer credentials
func (h *VolunteerHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.volunteerService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, response)
}

// GetProfile returns a volunteer's public profile with skill names
func (h *VolunteerHandler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Volunteer not found")
		return
	}

	response, err := h.volunteerService.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, response)
}
