package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greapevine/collaborator-finder/internal/dto"
	apierrors "github.com/greapevine/collaborator-finder/internal/errors"
	"github.com/greapevine/collaborator-finder/internal/middleware"
	"github.com/greapevine/collaborator-finder/internal/models"
	"github.com/greapevine/collaborator-finder/internal/services"
)

// SkillHandler coordinates skill profile HTTP handlers.
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// AddSkill adds a skill to the authenticated user's profile.
func (h *SkillHandler) AddSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AddSkillRequest struct {
		Skill string `json:"skill" binding:"required"`
		Level string `json:"level" binding:"required"`
	}

	var req AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userSkill, err := h.skillService.AddSkill(services.AddSkillInput{
		UserID:    userID,
		SkillName: req.Skill,
		Level:     models.SkillLevel(req.Level),
	})
	if err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserSkillDTO(*userSkill))
}

// RemoveSkill removes a skill from the authenticated user's profile.
func (h *SkillHandler) RemoveSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	skillName := c.Param("name")
	if err := h.skillService.RemoveSkill(userID, skillName); err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Skill removed successfully",
	})
}

func respondSkillError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidSkill),
		errors.Is(err, services.ErrInvalidSkillLevel):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicateSkill),
		errors.Is(err, services.ErrSkillLimitExceeded):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrSkillNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
