package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/volhub/backend/internal/application/catalog"
)

// SkillHandler handles skill catalog API endpoints
type SkillHandler struct {
	BaseHandler
	skillService *catalogapp.SkillService
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(skillService *catalogapp.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// RegisterRoutes registers skill catalog routes
func (h *SkillHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/skills", h.List)
}

// List returns the full skill catalog ordered by name
func (h *SkillHandler) List(c *gin.Context) {
	responses, err := h.skillService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, responses)
}
