package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/greapevine/collaborator-finder/internal/dto"
	apierrors "github.com/greapevine/collaborator-finder/internal/errors"
	"github.com/greapevine/collaborator-finder/internal/middleware"
	"github.com/greapevine/collaborator-finder/internal/repository"
	"github.com/greapevine/collaborator-finder/internal/services"
)

// InterestHandler coordinates the interest workflow HTTP handlers.
type InterestHandler struct {
	interestService *services.InterestService
}

// NewInterestHandler creates a new InterestHandler.
func NewInterestHandler(interestService *services.InterestService) *InterestHandler {
	return &InterestHandler{
		interestService: interestService,
	}
}

// ExpressInterest registers the authenticated user's interest in a project.
func (h *InterestHandler) ExpressInterest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projectID, ok := parseProjectID(c)
	if !ok {
		return
	}

	interest, err := h.interestService.ExpressInterest(userID, projectID)
	if err != nil {
		respondInterestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Interest registered successfully",
		"interest_id": interest.ID,
	})
}

// ListPendingInterests returns pending interests for a project (owner only).
// Applicants are exposed with username, email and skills only.
func (h *InterestHandler) ListPendingInterests(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projectID, ok := parseProjectID(c)
	if !ok {
		return
	}

	interests, err := h.interestService.ListPendingInterests(userID, projectID)
	if err != nil {
		respondInterestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"interests": dto.ToProjectInterestDTOs(interests),
	})
}

// AcceptInterest accepts a pending interest and adds the applicant as a
// contributor (owner only).
func (h *InterestHandler) AcceptInterest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projectID, interestID, ok := parseInterestIDs(c)
	if !ok {
		return
	}

	if err := h.interestService.AcceptInterest(userID, projectID, interestID); err != nil {
		respondInterestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Interest accepted successfully",
	})
}

// DeclineInterest declines a pending interest (owner only).
func (h *InterestHandler) DeclineInterest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projectID, interestID, ok := parseInterestIDs(c)
	if !ok {
		return
	}

	if err := h.interestService.DeclineInterest(userID, projectID, interestID); err != nil {
		respondInterestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Interest declined successfully",
	})
}

func parseInterestIDs(c *gin.Context) (projectID, interestID uint64, ok bool) {
	projectID, ok = parseProjectID(c)
	if !ok {
		return 0, 0, false
	}

	interestID, err := strconv.ParseUint(c.Param("interest_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid interest ID")
		return 0, 0, false
	}

	return projectID, interestID, true
}

func respondInterestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrInterestNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotProjectOwner),
		errors.Is(err, services.ErrSelfInterestNotAllowed):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrProjectFull),
		errors.Is(err, services.ErrDuplicateInterest),
		errors.Is(err, services.ErrInterestAlreadyHandled):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, repository.ErrConflictRetriesExhausted):
		apierrors.ServiceUnavailable(c, "Please retry the request")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
