package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/volhub/backend/internal/application/identity"
)

// OrganizationHandler handles organization-related API endpoints
type OrganizationHandler struct {
	BaseHandler
	organizationService *identityapp.OrganizationService
}

// NewOrganizationHandler creates a new OrganizationHandler
func NewOrganizationHandler(organizationService *identityapp.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		organizationService: organizationService,
	}
}

// RegisterRoutes registers organization routes
func (h *OrganizationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/organization/register", h.Register)
	rg.POST("/organization/login", h.Login)
}

// Register creates a new organization account
func (h *OrganizationHandler) Register(c *gin.Context) {
	var req identityapp.RegisterOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.organizationService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, response)
}

// Login verifies organization credentials
func (h *OrganizationHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	response, err := h.organizationService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, response)
}
