package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/greapevine/collaborator-finder/internal/constants"
	"github.com/greapevine/collaborator-finder/internal/database"
	apierrors "github.com/greapevine/collaborator-finder/internal/errors"
	"github.com/greapevine/collaborator-finder/internal/models"
)

// RequireProjectOwner checks that the authenticated user owns the project in
// the URL. This is the transport-level guard; the services re-check
// ownership independently so the core stays correct when invoked directly.
func RequireProjectOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectIDStr := c.Param("id")
		projectID, err := strconv.ParseUint(projectIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid project ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var project models.Project
		if err := database.GetDB().First(&project, projectID).Error; err != nil {
			apierrors.NotFound(c, "Project not found")
			c.Abort()
			return
		}

		// Project existence is public, so a non-owner gets an explicit 403
		if !project.IsOwner(userID) {
			apierrors.Forbidden(c, "Only the project owner can perform this action")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyProject, project)
		c.Next()
	}
}
