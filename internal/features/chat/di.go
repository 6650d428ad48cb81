package chat

import (
	projects_services "teamboard/internal/features/projects/services"
	"teamboard/internal/util/logger"
	"teamboard/internal/util/rate_limit"
)

var chatService = &ChatService{
	chatRepository: &ChatRepository{},
	projectService: projects_services.GetProjectService(),
	rateLimiter:    rate_limit.NewRateLimiter(),
}

var retentionBackgroundService = &RetentionBackgroundService{
	chatRepository: &ChatRepository{},
	logger:         logger.GetLogger(),
}

var chatController = &ChatController{
	chatService: chatService,
}

func GetChatService() *ChatService {
	return chatService
}

func GetChatController() *ChatController {
	return chatController
}

func GetRetentionBackgroundService() *RetentionBackgroundService {
	return retentionBackgroundService
}

func SetupDependencies() {
	projects_services.GetProjectService().AddProjectDeletionListener(chatService)
}
