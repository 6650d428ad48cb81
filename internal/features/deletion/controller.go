package deletion

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	users_models "teamboard/internal/features/users/models"
)

type DeletionController struct {
	deletionService *DeletionService
}

func (c *DeletionController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:projectId/delete-request", c.RequestDeletion)
	router.DELETE("/projects/:projectId/force", c.ForceDelete)
	router.POST("/projects/:projectId/vote-delete", c.CastVote)
	router.GET("/projects/:projectId/deletion-vote", c.GetVoteStatus)
}

func statusForDeletionError(err error) int {
	switch {
	case errors.Is(err, ErrProjectNotFound), errors.Is(err, ErrNoVoteInProgress):
		return http.StatusNotFound
	case errors.Is(err, ErrNotOwner), errors.Is(err, ErrNotMember):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RequestDeletion
// @Summary Request project deletion
// @Description Owner requests deletion: deletes immediately when no tasks are incomplete, asks for confirmation when the owner is alone, otherwise opens a team vote
// @Tags deletion
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} RequestDeletionResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/delete-request [post]
func (c *DeletionController) RequestDeletion(ctx *gin.Context) {
	user, isOk := ctx.MustGet("user").(*users_models.User)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	response, err := c.deletionService.RequestDeletion(projectID, user)
	if err != nil {
		ctx.JSON(statusForDeletionError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ForceDelete
// @Summary Force delete a project
// @Description Owner deletes the project unconditionally, bypassing any vote; no notifications are sent
// @Tags deletion
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/force [delete]
func (c *DeletionController) ForceDelete(ctx *gin.Context) {
	user, isOk := ctx.MustGet("user").(*users_models.User)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	if err := c.deletionService.ForceDelete(projectID, user); err != nil {
		ctx.JSON(statusForDeletionError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// CastVote
// @Summary Vote on project deletion
// @Description Member approves or rejects the outstanding deletion vote; a rejection cancels it, quorum deletes the project
// @Tags deletion
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body CastVoteRequestDTO true "Vote"
// @Success 200 {object} CastVoteResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/vote-delete [post]
func (c *DeletionController) CastVote(ctx *gin.Context) {
	user, isOk := ctx.MustGet("user").(*users_models.User)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var request CastVoteRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.deletionService.CastVote(projectID, *request.Approve, user)
	if err != nil {
		ctx.JSON(statusForDeletionError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetVoteStatus
// @Summary Get deletion vote status
// @Description Report whether a deletion vote is in progress and where it stands
// @Tags deletion
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} VoteStatusResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/deletion-vote [get]
func (c *DeletionController) GetVoteStatus(ctx *gin.Context) {
	user, isOk := ctx.MustGet("user").(*users_models.User)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	response, err := c.deletionService.GetVoteStatus(projectID, user)
	if err != nil {
		ctx.JSON(statusForDeletionError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
