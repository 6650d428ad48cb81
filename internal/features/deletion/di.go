package deletion

import (
	audit_logs "teamboard/internal/features/audit_logs"
	"teamboard/internal/features/notifications"
	projects_repositories "teamboard/internal/features/projects/repositories"
	projects_services "teamboard/internal/features/projects/services"
	tasks_repositories "teamboard/internal/features/tasks/repositories"
	tasks_services "teamboard/internal/features/tasks/services"
	lock_utils "teamboard/internal/util/lock"
)

var deletionService = &DeletionService{
	voteRepository:      &DeletionVoteRepository{},
	projectRepository:   &projects_repositories.ProjectRepository{},
	taskRepository:      &tasks_repositories.TaskRepository{},
	projectService:      projects_services.GetProjectService(),
	taskService:         tasks_services.GetTaskService(),
	notificationService: notifications.GetNotificationService(),
	auditLogService:     audit_logs.GetAuditLogService(),
	projectLocks:        lock_utils.NewKeyedMutex(),
}

var deletionController = &DeletionController{
	deletionService: deletionService,
}

func GetDeletionService() *DeletionService {
	return deletionService
}

func GetDeletionController() *DeletionController {
	return deletionController
}
