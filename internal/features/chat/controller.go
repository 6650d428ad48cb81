package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	users_models "teamboard/internal/features/users/models"
)

type ChatController struct {
	chatService *ChatService
}

func (c *ChatController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:projectId/messages", c.GetMessages)
	router.POST("/projects/:projectId/messages", c.PostMessage)
	router.DELETE("/projects/:projectId/messages", c.ClearMessages)
	router.GET("/projects/:projectId/chat-settings", c.GetChatSettings)
	router.PUT("/projects/:projectId/chat-settings", c.SaveChatSettings)
}

// GetMessages
// @Summary Get chat messages
// @Description Get project chat messages within the retention window; expired messages are pruned
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} ListMessagesResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects/{projectId}/messages [get]
func (c *ChatController) GetMessages(ctx *gin.Context) {
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

	response, err := c.chatService.GetMessages(projectID, user)
	if err != nil {
		if err.Error() == "insufficient permissions to view chat" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// PostMessage
// @Summary Post a chat message
// @Description Post a message to the project chat; rate limited per project
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body PostMessageRequest true "Message content"
// @Success 200 {object} Message
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /projects/{projectId}/messages [post]
func (c *ChatController) PostMessage(ctx *gin.Context) {
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

	var request PostMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	message, err := c.chatService.PostMessage(projectID, &request, user)
	if err != nil {
		switch err.Error() {
		case "insufficient permissions to post messages":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case "message content cannot be blank":
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case "rate limit exceeded":
			ctx.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post message"})
		}
		return
	}

	ctx.JSON(http.StatusOK, message)
}

// ClearMessages
// @Summary Clear project chat
// @Description Delete all chat messages of a project; owner only
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects/{projectId}/messages [delete]
func (c *ChatController) ClearMessages(ctx *gin.Context) {
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

	if err := c.chatService.ClearMessages(projectID, user); err != nil {
		if err.Error() == "only project owner can clear chat" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear messages"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Chat cleared"})
}

// GetChatSettings
// @Summary Get chat settings
// @Description Get the retention settings of the project chat
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} ChatSettings
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects/{projectId}/chat-settings [get]
func (c *ChatController) GetChatSettings(ctx *gin.Context) {
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

	settings, err := c.chatService.GetChatSettings(projectID, user)
	if err != nil {
		if err.Error() == "insufficient permissions to view chat settings" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chat settings"})
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// SaveChatSettings
// @Summary Save chat settings
// @Description Change the chat retention window; owner only, between 1 and 365 days
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body ChatSettingsRequest true "Retention settings"
// @Success 200 {object} ChatSettings
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects/{projectId}/chat-settings [put]
func (c *ChatController) SaveChatSettings(ctx *gin.Context) {
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

	var request ChatSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	settings, err := c.chatService.SaveChatSettings(projectID, &request, user)
	if err != nil {
		if err.Error() == "only project owner can change chat settings" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save chat settings"})
		return
	}

	ctx.JSON(http.StatusOK, settings)
}
