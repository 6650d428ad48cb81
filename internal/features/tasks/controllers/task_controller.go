package tasks_controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tasks_dto "teamboard/internal/features/tasks/dto"
	tasks_services "teamboard/internal/features/tasks/services"
	users_models "teamboard/internal/features/users/models"
)

type TaskController struct {
	taskService *tasks_services.TaskService
}

func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:projectId/tasks", c.GetBoard)
	router.POST("/projects/:projectId/tasks", c.SaveBoard)
	router.POST("/tasks/:taskId/complete", c.CompleteTask)
}

// GetBoard
// @Summary Get the task board
// @Description Get the three-bucket task board of a project the caller belongs to
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} tasks_dto.BoardResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects/{projectId}/tasks [get]
func (c *TaskController) GetBoard(ctx *gin.Context) {
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

	board, err := c.taskService.GetBoard(projectID, user)
	if err != nil {
		if err.Error() == "insufficient permissions to view tasks" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	ctx.JSON(http.StatusOK, board)
}

// SaveBoard
// @Summary Save the task board
// @Description Replace the project board; the add and delete actions are owner only
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body tasks_dto.SaveBoardRequestDTO true "Full board state"
// @Success 200 {object} tasks_dto.BoardResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects/{projectId}/tasks [post]
func (c *TaskController) SaveBoard(ctx *gin.Context) {
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

	var request tasks_dto.SaveBoardRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	board, err := c.taskService.SaveBoard(projectID, &request, user)
	if err != nil {
		switch err.Error() {
		case "insufficient permissions to modify tasks", "only project owner can add or delete tasks":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case "assignee not found":
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tasks"})
		}
		return
	}

	ctx.JSON(http.StatusOK, board)
}

// CompleteTask
// @Summary Complete a task
// @Description Move a task to the DONE bucket and notify the other project members
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task ID"
// @Success 200 {object} tasks_models.Task
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{taskId}/complete [post]
func (c *TaskController) CompleteTask(ctx *gin.Context) {
	user, isOk := ctx.MustGet("user").(*users_models.User)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	task, err := c.taskService.CompleteTask(taskID, user)
	if err != nil {
		switch err.Error() {
		case "task not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "insufficient permissions to complete task":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete task"})
		}
		return
	}

	ctx.JSON(http.StatusOK, task)
}
