package timetracking

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	users_models "teamboard/internal/features/users/models"
)

type TimeEntryController struct {
	timeEntryService *TimeEntryService
}

func (c *TimeEntryController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:projectId/time-entries", c.GetTimeEntries)
	router.POST("/projects/:projectId/time-entries", c.CreateTimeEntry)
	router.DELETE("/projects/:projectId/time-entries/:entryId", c.DeleteTimeEntry)
}

// GetTimeEntries
// @Summary List project time entries
// @Description List all time entries of a project the caller belongs to
// @Tags timetracking
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} ListTimeEntriesResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects/{projectId}/time-entries [get]
func (c *TimeEntryController) GetTimeEntries(ctx *gin.Context) {
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

	response, err := c.timeEntryService.GetProjectTimeEntries(projectID, user)
	if err != nil {
		if err.Error() == "insufficient permissions to view time entries" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve time entries"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateTimeEntry
// @Summary Log time
// @Description Log hours against one or more tasks of a project the caller belongs to
// @Tags timetracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body CreateTimeEntryRequest true "Time entry"
// @Success 200 {object} TimeEntry
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects/{projectId}/time-entries [post]
func (c *TimeEntryController) CreateTimeEntry(ctx *gin.Context) {
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

	var request CreateTimeEntryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := c.timeEntryService.CreateTimeEntry(projectID, &request, user)
	if err != nil {
		if err.Error() == "insufficient permissions to log time" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create time entry"})
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// DeleteTimeEntry
// @Summary Delete a time entry
// @Description Delete a time entry; only the entry's author may do this
// @Tags timetracking
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param entryId path string true "Time entry ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/time-entries/{entryId} [delete]
func (c *TimeEntryController) DeleteTimeEntry(ctx *gin.Context) {
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

	entryID, err := uuid.Parse(ctx.Param("entryId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time entry ID"})
		return
	}

	if err := c.timeEntryService.DeleteTimeEntry(projectID, entryID, user); err != nil {
		switch err.Error() {
		case "time entry not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "only the author can delete a time entry":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete time entry"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Time entry deleted"})
}
